package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/services/order/domain/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDeriveLine(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		price    string
		want     string
	}{
		{"whole units", "2", "10", "20"},
		{"fractional price", "3", "1.5", "4.5"},
		{"rounds to two decimals", "3", "0.333", "1"},
		{"zero quantity", "0", "99.99", "0"},
		{"zero price", "5", "0", "0"},
		{"fractional quantity", "0.5", "7", "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := DeriveLine(models.OrderLine{Quantity: dec(tt.quantity), Price: dec(tt.price)})
			if !line.Amount.Equal(dec(tt.want)) {
				t.Fatalf("DeriveLine amount = %s, want %s", line.Amount, tt.want)
			}
		})
	}
}

func TestDeriveLineOverwritesStaleAmount(t *testing.T) {
	line := models.OrderLine{Quantity: dec("2"), Price: dec("10"), Amount: dec("999")}
	got := DeriveLine(line)
	if !got.Amount.Equal(dec("20")) {
		t.Fatalf("stale amount survived derivation: got %s", got.Amount)
	}
}

func TestDeriveLineIdempotent(t *testing.T) {
	line := DeriveLine(models.OrderLine{Quantity: dec("3"), Price: dec("1.333")})
	again := DeriveLine(line)
	if !line.Amount.Equal(again.Amount) {
		t.Fatalf("second derivation changed amount: %s vs %s", line.Amount, again.Amount)
	}
}

func TestDeriveOrder(t *testing.T) {
	order := models.Order{
		OrderNumber:    "ORD-0001",
		LatePickupDate: "2024-02-01",
		Lines: []models.OrderLine{
			{Quantity: dec("2"), Price: dec("10")},
			{Quantity: dec("1"), Price: dec("4.25")},
		},
	}

	p := DeriveOrder(order)
	if !p.Amount.Equal(dec("24.25")) {
		t.Fatalf("total amount = %s, want 24.25", p.Amount)
	}
	if p.DueDate != "2024-02-01" {
		t.Fatalf("due date = %q, want latePickupDate", p.DueDate)
	}
	// The stored lines themselves keep whatever amount they carried.
	if !order.Lines[0].Amount.IsZero() {
		t.Fatalf("DeriveOrder mutated the input order")
	}
}

func TestDeriveOrderNoLines(t *testing.T) {
	p := DeriveOrder(models.Order{OrderNumber: "ORD-0002"})
	if !p.Amount.IsZero() {
		t.Fatalf("empty order amount = %s, want 0", p.Amount)
	}
}

func TestDeriveOrdersPreservesOrder(t *testing.T) {
	orders := []models.Order{
		{OrderNumber: "ORD-0001"},
		{OrderNumber: "ORD-0002"},
		{OrderNumber: "ORD-0003"},
	}
	out := DeriveOrders(orders)
	if len(out) != 3 {
		t.Fatalf("got %d projections, want 3", len(out))
	}
	for i, p := range out {
		if p.OrderNumber != orders[i].OrderNumber {
			t.Fatalf("projection %d = %q, want %q", i, p.OrderNumber, orders[i].OrderNumber)
		}
	}
}

func TestSortHistory(t *testing.T) {
	history := []models.HistoryEntry{
		{Timestamp: "2024-03-02T08:00:00Z", Event: "Order approved"},
		{Timestamp: "2024-03-01T09:30:00Z", Event: "Order created"},
		{Timestamp: "2024-03-05T12:00:00Z", Event: "Order shipped"},
	}

	sorted := SortHistory(history)

	wantEvents := []string{"Order created", "Order approved", "Order shipped"}
	for i, want := range wantEvents {
		if sorted[i].Event != want {
			t.Fatalf("position %d = %q, want %q", i, sorted[i].Event, want)
		}
	}
	// Input untouched.
	if history[0].Event != "Order approved" {
		t.Fatal("SortHistory mutated its input")
	}
}

func TestSortHistoryUnparseableTimestamps(t *testing.T) {
	history := []models.HistoryEntry{
		{Timestamp: "2024-06-02", Event: "second"},
		{Timestamp: "2024-06-01", Event: "first"},
	}
	sorted := SortHistory(history)
	if sorted[0].Event != "first" || sorted[1].Event != "second" {
		t.Fatalf("lexicographic fallback failed: %+v", sorted)
	}
}

func TestSortHistoryEmpty(t *testing.T) {
	if got := SortHistory(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}
