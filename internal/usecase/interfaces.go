package usecase

import (
	"context"

	"github.com/xavierca1/wa-gateway/internal/entity"
)

// Messenger is the WhatsApp client capability the dispatch flows depend on.
type Messenger interface {
	SendMessage(ctx context.Context, to entity.Address, payload entity.Payload) error
	MediaFromURL(ctx context.Context, source string) (*entity.Media, error)
}

type EventPublisher interface {
	PublishDelivery(ctx context.Context, event entity.DeliveryEvent) error
}

// DeliveryRecorder counts dispatch outcomes; status is entity.DeliveryStatusSent or Failed.
type DeliveryRecorder interface {
	RecordDelivery(operation, status string)
}
