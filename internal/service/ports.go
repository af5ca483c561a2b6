package service

import (
	"context"
	"time"

	"github.com/landsetu/landsetu/internal/domain/entity"
)

// Collaborator ports consumed by the services. All of them are optional:
// a nil collaborator disables the feature and failures are logged, never
// surfaced to the caller.

type LandEventPublisher interface {
	PublishLandCreated(ctx context.Context, land *entity.Land) error
	PublishLandUpdated(ctx context.Context, land *entity.Land) error
	PublishLandDeleted(ctx context.Context, landID string) error
}

type ContactEventPublisher interface {
	PublishContactCreated(ctx context.Context, request *entity.ContactRequest) error
}

type FeaturedCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, data []byte, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type InquiryMailer interface {
	SendInquiryNotification(to, landTitle, inquirerName, message string) error
}

type PhotoStorage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}
