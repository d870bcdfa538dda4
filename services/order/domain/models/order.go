package models

import "github.com/shopspring/decimal"

// Address is a free-text postal address. No invariant beyond presence when
// required by the parent entity.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderLine is one item entry within an order. Amount is derived —
// Quantity × Price, recomputed by the derivation engine on every mutation —
// and is never independently authoritative.
type OrderLine struct {
	Item     string          `json:"item"`
	Units    string          `json:"units"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

// HistoryEntry is a timestamped event in an order's history. Immutable once
// created; an order's history is an append-only sequence, sorted by ascending
// timestamp at render time rather than stored sorted.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
}

// Order is the aggregate root representing one customer shipment/transaction.
// JSON field names match the persisted document format.
//
// OrderNumber follows the ORD-#### convention but the format itself is not
// enforced; uniqueness is enforced at append time by the repository.
// Exactly one of Incoterm / FreightTerms must be set (validated on create).
// TotalShipUnitCount, TotalQuantity, and DiscountRate are informational and
// not cross-validated against Lines.
type Order struct {
	OrderNumber                string         `json:"orderNumber"`
	Customer                   string         `json:"customer"`
	TransactionDate            string         `json:"transactionDate"`
	Status                     Status         `json:"status"`
	FromLocation               string         `json:"fromLocation"`
	ToLocation                 string         `json:"toLocation"`
	PendingApprovalReasonCodes []ReasonCode   `json:"pendingApprovalReasonCode"`
	SupportRep                 string         `json:"supportRep"`
	Incoterm                   string         `json:"incoterm"`
	FreightTerms               string         `json:"freightTerms"`
	TotalShipUnitCount         float64        `json:"totalShipUnitCount"`
	TotalQuantity              float64        `json:"totalQuantity"`
	DiscountRate               float64        `json:"discountRate"`
	BillingAddress             Address        `json:"billingAddress"`
	ShippingAddress            Address        `json:"shippingAddress"`
	EarlyPickupDate            string         `json:"earlyPickupDate"`
	LatePickupDate             string         `json:"latePickupDate"`
	Lines                      []OrderLine    `json:"lines"`
	History                    []HistoryEntry `json:"history"`
}

// Projection is the read-side view of an order: the stored fields plus the
// derived total amount and due-date alias. Derived fields live only here —
// never written back to the store — so they cannot go stale.
type Projection struct {
	Order
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"dueDate"`
}

// OrderDraft is a candidate order assembled by the create form. NewDraft
// fills field-level defaults once, so call sites never scatter fallbacks.
type OrderDraft struct {
	OrderNumber                string
	Customer                   string
	TransactionDate            string
	Status                     Status
	FromLocation               string
	ToLocation                 string
	PendingApprovalReasonCodes []ReasonCode
	SupportRep                 string
	Incoterm                   string
	FreightTerms               string
	TotalShipUnitCount         float64
	TotalQuantity              float64
	DiscountRate               float64
	BillingAddress             Address
	ShippingAddress            Address
	EarlyPickupDate            string
	LatePickupDate             string
	Lines                      []OrderLine
}

// NewDraft returns an OrderDraft with the form's field-level defaults:
// status Pending, no reason codes, empty line set ready for input.
func NewDraft() OrderDraft {
	return OrderDraft{
		Status:                     StatusPending,
		PendingApprovalReasonCodes: []ReasonCode{},
		Lines:                      []OrderLine{},
	}
}
