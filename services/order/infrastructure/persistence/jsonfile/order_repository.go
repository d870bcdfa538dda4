// Package jsonfile implements the order repository over a single JSON
// document: every operation reads the whole collection, mutates it in memory,
// and writes the whole collection back.
//
// A process-local mutex serializes the read-modify-write cycle so concurrent
// HTTP handlers cannot interleave mid-rewrite. Across processes the document
// stays last-write-wins at whole-document granularity; see DESIGN.md for the
// documented upgrade path.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/pkg/events"
	"github.com/ghuser/orderdesk/pkg/store"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	domainevents "github.com/ghuser/orderdesk/services/order/domain/events"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// OrderRepository implements repositories.OrderRepository against a
// DocumentStore holding one JSON array of orders.
type OrderRepository struct {
	store *store.DocumentStore
	bus   *events.EventBus

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

// NewOrderRepository returns an OrderRepository backed by the given document
// store and event bus. The bus is used to publish order.created and
// order.deleted after successful writes; pass nil to disable publishing.
func NewOrderRepository(docs *store.DocumentStore, bus *events.EventBus) *OrderRepository {
	return &OrderRepository{store: docs, bus: bus}
}

// ListAll returns the full decoded collection. Missing or corrupt documents
// decode to an empty collection — the lenient-read policy keeps every read
// path available even when the store is damaged.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	data, err := r.store.Read(ctx)
	if err != nil || len(data) == 0 {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return []models.Order{}, nil
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Append reads the collection, appends order, and writes the collection back.
// Order numbers are unique: a duplicate returns ErrOrderAlreadyExists before
// anything is written. Publishes OrderCreatedEvent after a successful write.
func (r *OrderRepository) Append(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.ListAll(ctx)
	if err != nil {
		return err
	}

	for _, existing := range orders {
		if existing.OrderNumber == order.OrderNumber {
			return orderdomain.ErrOrderAlreadyExists
		}
	}

	orders = append(orders, *order)
	if err := r.replace(ctx, orders); err != nil {
		return err
	}

	if r.bus != nil {
		if err := r.publishCreated(ctx, order); err != nil {
			return fmt.Errorf("publish order created: %w", err)
		}
	}
	return nil
}

// RemoveByNumber filters out every record with the given order number and
// rewrites the document. A number that matches nothing is a no-op success;
// the document is only rewritten when something was actually removed.
func (r *OrderRepository) RemoveByNumber(ctx context.Context, orderNumber string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.ListAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderNumber != orderNumber {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return nil
	}

	if err := r.replace(ctx, kept); err != nil {
		return err
	}

	if r.bus != nil {
		if err := r.publishDeleted(ctx, orderNumber); err != nil {
			return fmt.Errorf("publish order deleted: %w", err)
		}
	}
	return nil
}

// replace marshals the collection (indented, matching the document's
// hand-editable format) and swaps it into the store.
func (r *OrderRepository) replace(ctx context.Context, orders []models.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal orders: %w", orderdomain.ErrPersistence, err)
	}
	if err := r.store.Replace(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", orderdomain.ErrPersistence, err)
	}
	return nil
}

func (r *OrderRepository) publishCreated(ctx context.Context, order *models.Order) error {
	event := domainevents.OrderCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Order:      *order,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(ctx, domainevents.TopicOrderCreated, event, event.EventID)
}

func (r *OrderRepository) publishDeleted(ctx context.Context, orderNumber string) error {
	event := domainevents.OrderDeletedEvent{
		EventID:     uuid.New(),
		Version:     1,
		OrderNumber: orderNumber,
		OccurredAt:  time.Now().UTC(),
	}
	return r.publish(ctx, domainevents.TopicOrderDeleted, event, event.EventID)
}

func (r *OrderRepository) publish(ctx context.Context, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	return r.bus.Publish(ctx, topic, msg)
}
