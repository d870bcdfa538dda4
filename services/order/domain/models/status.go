package models

// Status is the lifecycle state of an order. The model enforces membership
// only; any status may be overwritten by any other (no transition machine).
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusShipped   Status = "Shipped"
	StatusCancelled Status = "Cancelled"
)

// Statuses lists all valid statuses in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusShipped, StatusCancelled}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusShipped, StatusCancelled:
		return true
	}
	return false
}

// String returns the underlying string value.
func (s Status) String() string {
	return string(s)
}

// ReasonCode is a coded justification for an order remaining in
// pending-approval state. Multi-select, order-insignificant.
type ReasonCode string

const (
	ReasonPriceDiscrepancy ReasonCode = "PRICE_DISCREPANCY"
	ReasonCreditHold       ReasonCode = "CREDIT_HOLD"
	ReasonStockShortage    ReasonCode = "STOCK_SHORTAGE"
	ReasonCustomerRequest  ReasonCode = "CUSTOMER_REQUEST"
)

// ReasonCodes lists all valid reason codes.
func ReasonCodes() []ReasonCode {
	return []ReasonCode{ReasonPriceDiscrepancy, ReasonCreditHold, ReasonStockShortage, ReasonCustomerRequest}
}

// Valid reports whether r is a known reason code.
func (r ReasonCode) Valid() bool {
	switch r {
	case ReasonPriceDiscrepancy, ReasonCreditHold, ReasonStockShortage, ReasonCustomerRequest:
		return true
	}
	return false
}
