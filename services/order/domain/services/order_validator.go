// Package services contains stateless domain services for the order bounded
// context: draft validation, the derivation engine, and the filter/summary
// pipeline. Everything here is a pure function over domain types.
package services

import (
	"strings"

	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// ValidateDraft checks a candidate order against the submission rules and
// either yields a complete Order or the full list of violated rules.
//
// Rules, all evaluated (no first-failure short circuit):
//  1. orderNumber, customer, transactionDate, status, fromLocation and
//     toLocation are non-empty after trimming.
//  2. status and every pendingApprovalReasonCode are known values.
//  3. Exactly one of incoterm / freightTerms is set.
//  4. At least one line item.
func ValidateDraft(draft models.OrderDraft) (*models.Order, *orderdomain.ValidationError) {
	var violations []string

	required := []struct {
		field string
		value string
	}{
		{"orderNumber", draft.OrderNumber},
		{"customer", draft.Customer},
		{"transactionDate", draft.TransactionDate},
		{"status", draft.Status.String()},
		{"fromLocation", draft.FromLocation},
		{"toLocation", draft.ToLocation},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			violations = append(violations, f.field+" is required")
		}
	}

	if draft.Status != "" && !draft.Status.Valid() {
		violations = append(violations, "status must be one of "+statusList())
	}
	for _, code := range draft.PendingApprovalReasonCodes {
		if !code.Valid() {
			violations = append(violations, "unknown reason code "+string(code)+"; must be one of "+reasonCodeList())
		}
	}

	hasIncoterm := strings.TrimSpace(draft.Incoterm) != ""
	hasFreightTerms := strings.TrimSpace(draft.FreightTerms) != ""
	switch {
	case hasIncoterm && hasFreightTerms:
		violations = append(violations, "incoterm and freightTerms are mutually exclusive")
	case !hasIncoterm && !hasFreightTerms:
		violations = append(violations, "either incoterm or freightTerms must be set")
	}

	if len(draft.Lines) == 0 {
		violations = append(violations, "at least one line item is required")
	}

	if len(violations) > 0 {
		return nil, &orderdomain.ValidationError{Violations: violations}
	}

	order := &models.Order{
		OrderNumber:                draft.OrderNumber,
		Customer:                   draft.Customer,
		TransactionDate:            draft.TransactionDate,
		Status:                     draft.Status,
		FromLocation:               draft.FromLocation,
		ToLocation:                 draft.ToLocation,
		PendingApprovalReasonCodes: draft.PendingApprovalReasonCodes,
		SupportRep:                 draft.SupportRep,
		Incoterm:                   draft.Incoterm,
		FreightTerms:               draft.FreightTerms,
		TotalShipUnitCount:         draft.TotalShipUnitCount,
		TotalQuantity:              draft.TotalQuantity,
		DiscountRate:               draft.DiscountRate,
		BillingAddress:             draft.BillingAddress,
		ShippingAddress:            draft.ShippingAddress,
		EarlyPickupDate:            draft.EarlyPickupDate,
		LatePickupDate:             draft.LatePickupDate,
		Lines:                      draft.Lines,
		History:                    []models.HistoryEntry{},
	}
	if order.PendingApprovalReasonCodes == nil {
		order.PendingApprovalReasonCodes = []models.ReasonCode{}
	}
	return order, nil
}

func statusList() string {
	all := models.Statuses()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

func reasonCodeList() string {
	all := models.ReasonCodes()
	names := make([]string, len(all))
	for i, r := range all {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
