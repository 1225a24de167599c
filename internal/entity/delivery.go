package entity

import "time"

const (
	DeliveryStatusSent   = "SENT"
	DeliveryStatusFailed = "FAILED"
)

// DeliveryEvent is the outcome of one dispatch, published for downstream consumers.
type DeliveryEvent struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"` // text, image, file
	To         string    `json:"to"`
	Status     string    `json:"status"`
	Error      string    `json:"error,omitempty"`
	Origin     string    `json:"origin"` // HTTP, QUEUE
	OccurredAt time.Time `json:"occurred_at"`
}
