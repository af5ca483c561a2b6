package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/landsetu/landsetu/internal/domain/entity"
	"github.com/nats-io/nats.go"
)

const (
	subjectLandCreated    = "land.created"
	subjectLandUpdated    = "land.updated"
	subjectLandDeleted    = "land.deleted"
	subjectContactCreated = "contact.created"
)

type EventPublisher struct {
	conn *nats.Conn
}

func NewEventPublisher(conn *nats.Conn) (*EventPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("NATS connection cannot be nil")
	}
	return &EventPublisher{conn: conn}, nil
}

func (p *EventPublisher) PublishLandCreated(ctx context.Context, land *entity.Land) error {
	return p.publish(subjectLandCreated, land)
}

func (p *EventPublisher) PublishLandUpdated(ctx context.Context, land *entity.Land) error {
	return p.publish(subjectLandUpdated, land)
}

func (p *EventPublisher) PublishLandDeleted(ctx context.Context, landID string) error {
	return p.publish(subjectLandDeleted, map[string]string{"id": landID})
}

func (p *EventPublisher) PublishContactCreated(ctx context.Context, request *entity.ContactRequest) error {
	return p.publish(subjectContactCreated, request)
}

func (p *EventPublisher) publish(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message for subject %s: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message to NATS subject %s: %w", subject, err)
	}
	return nil
}
