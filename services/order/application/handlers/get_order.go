package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// GetOrderHandler handles GET /orders/{orderNumber} requests.
type GetOrderHandler struct {
	svc *appsvcs.Services
}

// NewGetOrderHandler returns a GetOrderHandler backed by the given services.
func NewGetOrderHandler(svc *appsvcs.Services) *GetOrderHandler {
	return &GetOrderHandler{svc: svc}
}

// Execute returns the read-only detail view of one order: derived fields
// plus history sorted by ascending timestamp.
//
//	@Summary		Get order
//	@Description	Read-only order detail with derived amount, due date, and sorted history
//	@Tags			orders
//	@Produce		json
//	@Param			orderNumber	path		string	true	"Order number"
//	@Success		200			{object}	services.Detail
//	@Failure		404			{object}	ErrorResponse
//	@Router			/orders/{orderNumber} [get]
func (h *GetOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	detail, err := h.svc.Order.Get(r.Context(), orderNumber)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, detail)
}
