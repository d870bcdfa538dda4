package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// GetSummaryHandler handles GET /dashboard/summary requests.
type GetSummaryHandler struct {
	svc *appsvcs.Services
}

// NewGetSummaryHandler returns a GetSummaryHandler backed by the given services.
func NewGetSummaryHandler(svc *appsvcs.Services) *GetSummaryHandler {
	return &GetSummaryHandler{svc: svc}
}

// Execute returns the dashboard summary cards: total orders, total revenue,
// and per-status counts over the unfiltered collection.
//
//	@Summary		Dashboard summary
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	services.DashboardSummary
//	@Failure		500	{object}	ErrorResponse
//	@Router			/dashboard/summary [get]
func (h *GetSummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Dashboard.Summary(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

// maxTrendWindowDays caps the requested trend window. The series is
// allocated up front at one point per day, so the window must be bounded the
// same way list page sizes are.
const maxTrendWindowDays = 366

// GetTrendHandler handles GET /dashboard/trend requests.
type GetTrendHandler struct {
	svc        *appsvcs.Services
	windowDays int
	// now is injected for tests; defaults to time.Now.
	now func() time.Time
}

// NewGetTrendHandler returns a GetTrendHandler with the configured default window.
func NewGetTrendHandler(svc *appsvcs.Services, windowDays int) *GetTrendHandler {
	return &GetTrendHandler{svc: svc, windowDays: windowDays, now: time.Now}
}

// Execute returns the daily order-count series for the trailing window ending
// today, zero-filled so the chart always spans the full window.
//
//	@Summary		Order-count trend
//	@Tags			dashboard
//	@Produce		json
//	@Param			days	query		int	false	"Window length in days (default from config, max 366)"
//	@Success		200		{array}		services.TrendPoint
//	@Failure		500		{object}	ErrorResponse
//	@Router			/dashboard/trend [get]
func (h *GetTrendHandler) Execute(w http.ResponseWriter, r *http.Request) {
	days := parseIntParam(r.URL.Query().Get("days"), h.windowDays)
	if days == 0 {
		days = h.windowDays
	}
	if days > maxTrendWindowDays {
		days = maxTrendWindowDays
	}

	trend, err := h.svc.Dashboard.Trend(r.Context(), days, h.now())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, trend)
}
