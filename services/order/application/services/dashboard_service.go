package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/services/order/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/order/domain/services"
)

// DashboardService computes the home dashboard aggregates. Everything is
// recomputed from the full collection on each call; the service holds no
// view state of its own.
type DashboardService struct {
	repo repositories.OrderRepository
}

// NewDashboardService returns a DashboardService over the given repository.
func NewDashboardService(repo repositories.OrderRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// DashboardSummary aggregates the whole collection for the summary cards:
// order count, total revenue across all line amounts, and per-status counts.
type DashboardSummary struct {
	TotalOrders  int             `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	Pending      int             `json:"Pending"`
	Approved     int             `json:"Approved"`
	Shipped      int             `json:"Shipped"`
	Cancelled    int             `json:"Cancelled"`
}

// Summary computes the dashboard summary over the unfiltered collection.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	counts := domainsvcs.Summarize(orders)
	return &DashboardSummary{
		TotalOrders:  counts.Total,
		TotalRevenue: domainsvcs.Revenue(orders),
		Pending:      counts.Pending,
		Approved:     counts.Approved,
		Shipped:      counts.Shipped,
		Cancelled:    counts.Cancelled,
	}, nil
}

// Trend computes the fixed-window daily order-count series ending at
// referenceDate inclusive, oldest first, zero-filled.
func (s *DashboardService) Trend(ctx context.Context, windowDays int, referenceDate time.Time) ([]domainsvcs.TrendPoint, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard trend: %w", err)
	}
	return domainsvcs.Trend(orders, windowDays, referenceDate), nil
}
