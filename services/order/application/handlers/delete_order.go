package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// DeleteOrderHandler handles DELETE /orders/{orderNumber} requests.
type DeleteOrderHandler struct {
	svc *appsvcs.Services
}

// NewDeleteOrderHandler returns a DeleteOrderHandler backed by the given services.
func NewDeleteOrderHandler(svc *appsvcs.Services) *DeleteOrderHandler {
	return &DeleteOrderHandler{svc: svc}
}

// Execute removes an order from the collection. A number that matches no
// record still succeeds — the collection is simply unchanged. Clients should
// drop the row from view only after this confirms.
//
//	@Summary		Delete order
//	@Description	Removes every record with the given order number; absent numbers are a no-op
//	@Tags			orders
//	@Param			orderNumber	path	string	true	"Order number"
//	@Success		204
//	@Failure		500	{object}	ErrorResponse
//	@Router			/orders/{orderNumber} [delete]
func (h *DeleteOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")

	if err := h.svc.Order.Delete(r.Context(), orderNumber); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
