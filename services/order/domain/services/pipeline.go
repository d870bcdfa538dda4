package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// StatusAll is the FilterSpec.Status value that disables status filtering.
const StatusAll = "All"

// dateLayout is the calendar-date format used by transaction dates and the
// trend series.
const dateLayout = "2006-01-02"

// FilterSpec describes the list view's active filters. Zero values disable
// the corresponding constraint.
type FilterSpec struct {
	// Status is a models.Status value or "All".
	Status string
	// SearchText matches case-insensitively against customer and order number.
	SearchText string
	// StartDate / EndDate are inclusive bounds compared against the date
	// portion of transactionDate (the prefix before any time component).
	StartDate string
	EndDate   string
	// ReasonCodes keeps orders sharing at least one code; empty = no filtering.
	ReasonCodes []models.ReasonCode
}

// Filter returns the orders satisfying every constraint in spec, preserving
// the input collection's relative order. Rows with an empty order number are
// excluded unconditionally before the predicate runs — a defensive guard
// against malformed persisted records.
func Filter(orders []models.Order, spec FilterSpec) []models.Order {
	q := strings.ToLower(spec.SearchText)

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if strings.TrimSpace(o.OrderNumber) == "" {
			continue
		}
		if spec.Status != "" && spec.Status != StatusAll && o.Status.String() != spec.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.Customer), q) &&
			!strings.Contains(strings.ToLower(o.OrderNumber), q) {
			continue
		}

		datePrefix, _, _ := strings.Cut(o.TransactionDate, "T")
		if spec.StartDate != "" && datePrefix < spec.StartDate {
			continue
		}
		if spec.EndDate != "" && datePrefix > spec.EndDate {
			continue
		}

		if len(spec.ReasonCodes) > 0 && !intersects(o.PendingApprovalReasonCodes, spec.ReasonCodes) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func intersects(have, want []models.ReasonCode) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Paginate slices page (zero-based) of size pageSize out of orders. Purely
// in-memory — page changes never refetch from the repository. Out-of-range
// pages yield an empty slice.
func Paginate(orders []models.Order, page, pageSize int) []models.Order {
	if page < 0 || pageSize <= 0 {
		return []models.Order{}
	}
	start := page * pageSize
	if start >= len(orders) {
		return []models.Order{}
	}
	end := start + pageSize
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end]
}

// Summary holds per-status order counts for a collection. Computed over the
// filtered set, so displayed counts always reflect active filters.
type Summary struct {
	Total     int `json:"total"`
	Pending   int `json:"Pending"`
	Approved  int `json:"Approved"`
	Shipped   int `json:"Shipped"`
	Cancelled int `json:"Cancelled"`
}

// Summarize counts orders by status. Total is always len(orders), whatever
// the statuses are.
func Summarize(orders []models.Order) Summary {
	s := Summary{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusApproved:
			s.Approved++
		case models.StatusShipped:
			s.Shipped++
		case models.StatusCancelled:
			s.Cancelled++
		}
	}
	return s
}

// Revenue sums the derived total amount of every order.
func Revenue(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(DeriveOrder(o).Amount)
	}
	return total
}

// TrendPoint is one day in the order-count time series.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Trend produces exactly windowDays points for the consecutive dates ending
// at referenceDate inclusive, oldest first. A point's count is the number of
// orders whose transactionDate equals that date exactly (string equality, not
// a range); dates with no orders still appear with count zero.
func Trend(orders []models.Order, windowDays int, referenceDate time.Time) []TrendPoint {
	if windowDays < 0 {
		windowDays = 0
	}
	counts := make(map[string]int, len(orders))
	for _, o := range orders {
		counts[o.TransactionDate]++
	}

	points := make([]TrendPoint, windowDays)
	for i := 0; i < windowDays; i++ {
		date := referenceDate.AddDate(0, 0, i-windowDays+1).Format(dateLayout)
		points[i] = TrendPoint{Date: date, Count: counts[date]}
	}
	return points
}
