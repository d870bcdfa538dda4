package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// Watermill topics published by the order repository.
const (
	TopicOrderCreated = "order.created"
	TopicOrderDeleted = "order.deleted"
)

// OrderCreatedEvent is published after a new order is persisted. It carries
// the full aggregate so consumers (cache warmers, audit loggers) never need
// to read the store back.
type OrderCreatedEvent struct {
	EventID    uuid.UUID    `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int          `json:"version"`  // Schema version; increment on breaking changes
	Order      models.Order `json:"order"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// OrderDeletedEvent is published after an order is removed from the store.
type OrderDeletedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	OrderNumber string    `json:"order_number"`
	OccurredAt  time.Time `json:"occurred_at"`
}
