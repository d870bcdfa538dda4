package services

import (
	"context"
	"testing"
	"time"

	"github.com/ghuser/orderdesk/services/order/domain/models"
)

func TestDashboardSummary(t *testing.T) {
	repo := &fakeRepo{orders: []models.Order{
		{OrderNumber: "ORD-0001", Status: models.StatusPending,
			Lines: []models.OrderLine{{Quantity: dec("2"), Price: dec("10")}}},
		{OrderNumber: "ORD-0002", Status: models.StatusApproved,
			Lines: []models.OrderLine{{Quantity: dec("1"), Price: dec("5.50")}}},
		{OrderNumber: "ORD-0003", Status: models.StatusApproved},
	}}
	svc := NewDashboardService(repo)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.TotalOrders != 3 {
		t.Fatalf("total orders = %d, want 3", summary.TotalOrders)
	}
	if !summary.TotalRevenue.Equal(dec("25.50")) {
		t.Fatalf("total revenue = %s, want 25.50", summary.TotalRevenue)
	}
	if summary.Pending != 1 || summary.Approved != 2 || summary.Shipped != 0 || summary.Cancelled != 0 {
		t.Fatalf("status counts = %+v", summary)
	}
}

func TestDashboardSummaryEmpty(t *testing.T) {
	svc := NewDashboardService(&fakeRepo{})
	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalOrders != 0 || !summary.TotalRevenue.IsZero() {
		t.Fatalf("summary of empty collection = %+v", summary)
	}
}

func TestDashboardTrend(t *testing.T) {
	repo := &fakeRepo{orders: []models.Order{
		{OrderNumber: "ORD-0001", TransactionDate: "2024-01-14"},
		{OrderNumber: "ORD-0002", TransactionDate: "2024-01-15"},
		{OrderNumber: "ORD-0003", TransactionDate: "2024-01-15"},
	}}
	svc := NewDashboardService(repo)

	ref := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	points, err := svc.Trend(context.Background(), 3, ref)
	if err != nil {
		t.Fatalf("trend: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[0].Date != "2024-01-13" || points[0].Count != 0 {
		t.Fatalf("point 0 = %+v", points[0])
	}
	if points[1].Count != 1 || points[2].Count != 2 {
		t.Fatalf("counts = %d, %d, want 1, 2", points[1].Count, points[2].Count)
	}
}
