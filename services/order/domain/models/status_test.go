package models

import "testing"

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}

	invalid := []Status{"", "pending", "Archived", "PENDING"}
	for _, s := range invalid {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestReasonCodeValid(t *testing.T) {
	for _, r := range ReasonCodes() {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}

	invalid := []ReasonCode{"", "credit_hold", "OTHER"}
	for _, r := range invalid {
		if r.Valid() {
			t.Errorf("%q should be invalid", r)
		}
	}
}

func TestNewDraftDefaults(t *testing.T) {
	draft := NewDraft()
	if draft.Status != StatusPending {
		t.Fatalf("default status = %q, want Pending", draft.Status)
	}
	if draft.PendingApprovalReasonCodes == nil || len(draft.PendingApprovalReasonCodes) != 0 {
		t.Fatalf("default reason codes = %v, want empty non-nil", draft.PendingApprovalReasonCodes)
	}
	if draft.Lines == nil || len(draft.Lines) != 0 {
		t.Fatalf("default lines = %v, want empty non-nil", draft.Lines)
	}
}
