package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
	"github.com/ghuser/orderdesk/services/order/domain/models"
	domainsvcs "github.com/ghuser/orderdesk/services/order/domain/services"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

// ListOrdersHandler handles GET /orders requests.
type ListOrdersHandler struct {
	svc *appsvcs.Services
}

// NewListOrdersHandler returns a ListOrdersHandler backed by the given services.
func NewListOrdersHandler(svc *appsvcs.Services) *ListOrdersHandler {
	return &ListOrdersHandler{svc: svc}
}

// Execute lists orders with filtering and pagination. The response carries
// the requested page plus a summary computed over the whole filtered set, so
// the grid and the status chips stay consistent from a single round trip.
//
//	@Summary		List orders
//	@Description	Filter, paginate and summarize the order collection
//	@Tags			orders
//	@Produce		json
//	@Param			status			query		string	false	"Status tab: All, Pending, Approved, Shipped or Cancelled"
//	@Param			q				query		string	false	"Case-insensitive search on customer and order number"
//	@Param			start_date		query		string	false	"Inclusive lower bound (YYYY-MM-DD)"
//	@Param			end_date		query		string	false	"Inclusive upper bound (YYYY-MM-DD)"
//	@Param			reason_codes	query		string	false	"Comma-separated reason codes"
//	@Param			page			query		int		false	"Zero-based page index"
//	@Param			page_size		query		int		false	"Page size (max 100)"
//	@Success		200				{object}	services.ListResult
//	@Failure		500				{object}	ErrorResponse
//	@Router			/orders [get]
func (h *ListOrdersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	spec := domainsvcs.FilterSpec{
		Status:     query.Get("status"),
		SearchText: query.Get("q"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}
	if raw := query.Get("reason_codes"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if code := strings.TrimSpace(part); code != "" {
				spec.ReasonCodes = append(spec.ReasonCodes, models.ReasonCode(code))
			}
		}
	}

	page := parseIntParam(query.Get("page"), 0)
	pageSize := parseIntParam(query.Get("page_size"), defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	result, err := h.svc.Order.List(r.Context(), spec, page, pageSize)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}

// parseIntParam returns the parsed non-negative integer or fallback.
func parseIntParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
