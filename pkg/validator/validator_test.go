package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
)

type sampleStruct struct {
	Status   string  `validate:"required,oneof=Pending Approved Shipped Cancelled"`
	Date     string  `validate:"omitempty,datetime=2006-01-02"`
	Quantity float64 `validate:"gte=0"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		Status:   "Pending",
		Date:     "2024-01-05",
		Quantity: 2,
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Status"] != "This field is required" {
		t.Errorf("unexpected Status message: %q", m["Status"])
	}
}

func TestFormatValidationErrors_oneof(t *testing.T) {
	s := sampleStruct{Status: "Unknown"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if !strings.Contains(m["Status"], "Must be one of") {
		t.Errorf("unexpected Status message: %q", m["Status"])
	}
}

func TestFormatValidationErrors_datetime(t *testing.T) {
	s := sampleStruct{Status: "Pending", Date: "05/01/2024"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if !strings.Contains(m["Date"], "2006-01-02") {
		t.Errorf("unexpected Date message: %q", m["Date"])
	}
}

func TestFormatValidationErrors_gte(t *testing.T) {
	s := sampleStruct{Status: "Pending", Quantity: -1}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Quantity"] != "Must be greater than or equal to 0" {
		t.Errorf("unexpected Quantity message: %q", m["Quantity"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type orderReq struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Shipped Cancelled"`
	Date   string `json:"date"   validate:"omitempty,datetime=2006-01-02"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"status":"Pending","date":"2024-01-05"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[orderReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Status != "Pending" {
		t.Errorf("unexpected Status: %q", req.Status)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[orderReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"date":"2024-01-05"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[orderReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing status")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_invalidStatus(t *testing.T) {
	body := `{"status":"Archived"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[orderReq](w, r)
	if ok {
		t.Fatal("expected ok=false for unknown status")
	}
	if !strings.Contains(w.Body.String(), "Must be one of") {
		t.Errorf("expected oneof error in body, got: %s", w.Body.String())
	}
}
