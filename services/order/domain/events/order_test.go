package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/orderdesk/services/order/domain/events"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

func TestOrderCreatedEvent_JSONRoundTrip(t *testing.T) {
	original := events.OrderCreatedEvent{
		EventID: uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
		Version: 1,
		Order: models.Order{
			OrderNumber: "ORD-0001",
			Customer:    "Acme",
			Status:      models.StatusPending,
		},
		OccurredAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var decoded events.OrderCreatedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	if decoded.EventID != original.EventID {
		t.Errorf("EventID: got %v, want %v", decoded.EventID, original.EventID)
	}
	if decoded.Version != original.Version {
		t.Errorf("Version: got %d, want %d", decoded.Version, original.Version)
	}
	if decoded.Order.OrderNumber != "ORD-0001" {
		t.Errorf("OrderNumber: got %q", decoded.Order.OrderNumber)
	}
	if !decoded.OccurredAt.Equal(original.OccurredAt) {
		t.Errorf("OccurredAt: got %v, want %v", decoded.OccurredAt, original.OccurredAt)
	}
}

func TestOrderDeletedEvent_JSONFieldNames(t *testing.T) {
	evt := events.OrderDeletedEvent{
		EventID:     uuid.New(),
		Version:     1,
		OrderNumber: "ORD-0001",
		OccurredAt:  time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "order_number", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics(t *testing.T) {
	if events.TopicOrderCreated != "order.created" {
		t.Errorf("expected %q, got %q", "order.created", events.TopicOrderCreated)
	}
	if events.TopicOrderDeleted != "order.deleted" {
		t.Errorf("expected %q, got %q", "order.deleted", events.TopicOrderDeleted)
	}
}
