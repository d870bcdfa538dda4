package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pkgcache "github.com/ghuser/orderdesk/pkg/cache"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
	"github.com/ghuser/orderdesk/services/order/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/order/domain/services"
)

// OrderService orchestrates creation, listing, retrieval, and deletion of
// orders. Event publishing is handled by the repository layer; detail reads
// are served from the Redis projection cache when available.
type OrderService struct {
	repo  repositories.OrderRepository
	cache *pkgcache.OrderCache
}

// NewOrderService returns an OrderService wired with the given repository and cache.
func NewOrderService(repo repositories.OrderRepository, orderCache *pkgcache.OrderCache) *OrderService {
	return &OrderService{repo: repo, cache: orderCache}
}

// Create validates the draft and persists the resulting order. Validation
// failures come back as *domain.ValidationError carrying every violated rule.
// Line amounts are recomputed before the order is stored, and an initial
// history entry records the creation.
func (s *OrderService) Create(ctx context.Context, draft models.OrderDraft) (*models.Order, error) {
	order, verr := domainsvcs.ValidateDraft(draft)
	if verr != nil {
		return nil, verr
	}

	order.Lines = domainsvcs.DeriveLines(order.Lines)
	order.History = append(order.History, models.HistoryEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Event:     "Order created",
	})

	if err := s.repo.Append(ctx, order); err != nil {
		if errors.Is(err, orderdomain.ErrOrderAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("append order: %w", err)
	}

	return order, nil
}

// ListResult is one page of the filtered collection plus the aggregates the
// list view renders alongside it.
type ListResult struct {
	Orders   []models.Projection `json:"orders"`
	Summary  domainsvcs.Summary  `json:"summary"`
	Total    int                 `json:"total"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"pageSize"`
}

// List runs the filter pipeline over the full collection: filter, summarize
// the filtered set, paginate, then project the page for display. Filtering is
// stable — the collection's relative order is preserved.
func (s *OrderService) List(ctx context.Context, spec domainsvcs.FilterSpec, page, pageSize int) (*ListResult, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	filtered := domainsvcs.Filter(orders, spec)
	pageOrders := domainsvcs.Paginate(filtered, page, pageSize)

	return &ListResult{
		Orders:   domainsvcs.DeriveOrders(pageOrders),
		Summary:  domainsvcs.Summarize(filtered),
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Detail is the read-only order view: the derived projection with history
// sorted by ascending timestamp.
type Detail struct {
	models.Projection
	History []models.HistoryEntry `json:"history"`
}

// Get retrieves an order's detail view using a read-through cache pattern:
//  1. Check the Redis projection cache first.
//  2. On cache miss (or cache error), scan the document store.
//  3. Asynchronously warm the cache with the store result.
//
// Returns ErrOrderNotFound when no order carries the number.
func (s *OrderService) Get(ctx context.Context, orderNumber string) (*Detail, error) {
	if s.cache != nil {
		// Misses, cache errors, and undecodable payloads all fall through to
		// the store; the cache is never authoritative.
		if payload, err := s.cache.Get(ctx, orderNumber); err == nil {
			var detail Detail
			if err := json.Unmarshal(payload, &detail); err == nil {
				return &detail, nil
			}
		}
	}

	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	for _, o := range orders {
		if o.OrderNumber == orderNumber {
			detail := &Detail{
				Projection: domainsvcs.DeriveOrder(o),
				History:    domainsvcs.SortHistory(o.History),
			}
			s.warmCache(orderNumber, detail)
			return detail, nil
		}
	}
	return nil, orderdomain.ErrOrderNotFound
}

func (s *OrderService) warmCache(orderNumber string, detail *Detail) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(detail)
	if err != nil {
		return
	}
	go func() {
		_ = s.cache.Set(context.Background(), orderNumber, payload)
	}()
}

// Delete removes an order by number. Removing a number that matches nothing
// is a no-op success — the collection is simply unchanged. The cache entry is
// dropped only after the store confirms the rewrite, so a failed delete never
// hides state the store still holds.
func (s *OrderService) Delete(ctx context.Context, orderNumber string) error {
	if err := s.repo.RemoveByNumber(ctx, orderNumber); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), orderNumber)
	}
	return nil
}
