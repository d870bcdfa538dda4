// Package subscribers wires domain event handlers for read-model
// maintenance. The event bus is in-process, so subscribers run inside the
// API process and must be registered before the server accepts writes.
package subscribers

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/cache"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
	orderEvents "github.com/ghuser/orderdesk/services/order/domain/events"
	domainsvcs "github.com/ghuser/orderdesk/services/order/domain/services"
)

// Register wires all order event handlers.
// Add new topics here as more events are published.
func Register(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		orderEvents.TopicOrderCreated: handleOrderCreated(a),
		orderEvents.TopicOrderDeleted: handleOrderDeleted(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{orderEvents.TopicOrderCreated, orderEvents.TopicOrderDeleted})
	return nil
}

// handleOrderCreated returns a handler for order.created events.
// Handlers must be idempotent — the EventBus retries up to 3× on failure.
// Warms the Redis projection cache so subsequent detail reads hit cache.
func handleOrderCreated(a *app.Application) func(context.Context, *message.Message) error {
	orderCache := cache.NewOrderCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		detail := appsvcs.Detail{
			Projection: domainsvcs.DeriveOrder(evt.Order),
			History:    domainsvcs.SortHistory(evt.Order.History),
		}
		payload, err := json.Marshal(detail)
		if err != nil {
			return err
		}

		if err := orderCache.Set(ctx, evt.Order.OrderNumber, payload); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for order.created",
				"order_number", evt.Order.OrderNumber, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"order_number", evt.Order.OrderNumber)
		}

		return nil
	}
}

// handleOrderDeleted drops the cached projection so detail reads cannot
// serve an order the store no longer holds.
func handleOrderDeleted(a *app.Application) func(context.Context, *message.Message) error {
	orderCache := cache.NewOrderCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt orderEvents.OrderDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := orderCache.Delete(ctx, evt.OrderNumber); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "cache invalidated",
			"order_number", evt.OrderNumber)
		return nil
	}
}
