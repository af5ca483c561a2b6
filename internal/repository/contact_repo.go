package repository

import (
	"context"

	"github.com/landsetu/landsetu/internal/domain/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, request *entity.ContactRequest) (string, error)
	GetByID(ctx context.Context, id string) (*entity.ContactRequest, error)
	FindBySeller(ctx context.Context, sellerID string) ([]*entity.ContactRequestWithLand, error)
	UpdateStatus(ctx context.Context, id string, status entity.ContactStatus) error
}
