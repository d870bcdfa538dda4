package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// currencyScale is the number of decimal places carried by monetary amounts.
const currencyScale = 2

// DeriveLine recomputes a line's amount as quantity × price rounded to
// currency precision. The amount field is never independently authoritative;
// apply this on every mutation of quantity or price. Idempotent.
func DeriveLine(line models.OrderLine) models.OrderLine {
	line.Amount = line.Quantity.Mul(line.Price).Round(currencyScale)
	return line
}

// DeriveLines applies DeriveLine to every line, returning a fresh slice.
func DeriveLines(lines []models.OrderLine) []models.OrderLine {
	out := make([]models.OrderLine, len(lines))
	for i, l := range lines {
		out[i] = DeriveLine(l)
	}
	return out
}

// DeriveOrder produces the read-side projection of an order: total amount as
// the sum of derived line amounts, and the due-date alias of latePickupDate.
// The stored order is never mutated; every list, summary, and detail view
// consumes orders through this projection.
func DeriveOrder(order models.Order) models.Projection {
	amount := decimal.Zero
	for _, l := range order.Lines {
		amount = amount.Add(DeriveLine(l).Amount)
	}
	return models.Projection{
		Order:   order,
		Amount:  amount,
		DueDate: order.LatePickupDate,
	}
}

// DeriveOrders projects every order in the input, preserving order.
func DeriveOrders(orders []models.Order) []models.Projection {
	out := make([]models.Projection, len(orders))
	for i, o := range orders {
		out[i] = DeriveOrder(o)
	}
	return out
}

// SortHistory returns a copy of history sorted by ascending timestamp, the
// order the detail view displays. Timestamps parse as RFC 3339; entries that
// do not parse fall back to lexicographic comparison, which matches for the
// ISO-8601 strings the document carries.
func SortHistory(history []models.HistoryEntry) []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		ti, errI := time.Parse(time.RFC3339, out[i].Timestamp)
		tj, errJ := time.Parse(time.RFC3339, out[j].Timestamp)
		if errI != nil || errJ != nil {
			return out[i].Timestamp < out[j].Timestamp
		}
		return ti.Before(tj)
	})
	return out
}
