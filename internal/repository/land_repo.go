package repository

import (
	"context"

	"github.com/landsetu/landsetu/internal/domain/entity"
)

// SearchLimit caps public search results.
const SearchLimit = 50

// LandFilter is the optional constraint set for a public search. Zero values
// mean "no constraint": an empty string never matches as an empty substring,
// and a zero price/area bound is treated as unset.
type LandFilter struct {
	City     string
	State    string
	MinPrice float64
	MaxPrice float64
	MinArea  float64
	MaxArea  float64
	LandType string
	Search   string
}

type LandRepository interface {
	Create(ctx context.Context, land *entity.Land) (string, error)
	Update(ctx context.Context, land *entity.Land) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Land, error)
	GetByIDWithOwner(ctx context.Context, id string) (*entity.LandWithOwner, error)
	Search(ctx context.Context, filter LandFilter) ([]*entity.Land, error)
	FindFeatured(ctx context.Context, limit int64) ([]*entity.Land, error)
	FindActiveExcluding(ctx context.Context, excludeIDs []string, limit int64) ([]*entity.Land, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*entity.Land, error)
	AppendImage(ctx context.Context, id, imageURL string) error
}
