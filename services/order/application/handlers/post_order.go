package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	pkgvalidator "github.com/ghuser/orderdesk/pkg/validator"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// AddressPayload mirrors models.Address on the wire.
type AddressPayload struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
} // @name AddressPayload

// OrderLinePayload is one line item in a create request. Quantity and price
// must be non-negative; the submitted amount is ignored and recomputed
// server-side.
type OrderLinePayload struct {
	Item     string  `json:"item"`
	Units    string  `json:"units"`
	Quantity float64 `json:"quantity" validate:"gte=0" example:"2"`
	Price    float64 `json:"price"    validate:"gte=0" example:"10"`
	Amount   float64 `json:"amount"`
} // @name OrderLinePayload

// CreateOrderRequest is the request body for POST /orders. Presence rules
// (required fields, the incoterm/freightTerms exclusivity, the non-empty line
// set) are enforced by the domain validator so every violation is reported in
// one consolidated response; tags here cover structural input checks only.
type CreateOrderRequest struct {
	OrderNumber                string             `json:"orderNumber" example:"ORD-0001"`
	Customer                   string             `json:"customer" example:"Acme"`
	TransactionDate            string             `json:"transactionDate" validate:"omitempty,datetime=2006-01-02" example:"2024-01-05"`
	Status                     string             `json:"status" validate:"omitempty,oneof=Pending Approved Shipped Cancelled" example:"Pending"`
	FromLocation               string             `json:"fromLocation" example:"Warehouse A"`
	ToLocation                 string             `json:"toLocation" example:"Berlin"`
	PendingApprovalReasonCodes []string           `json:"pendingApprovalReasonCode" validate:"omitempty,dive,oneof=PRICE_DISCREPANCY CREDIT_HOLD STOCK_SHORTAGE CUSTOMER_REQUEST"`
	SupportRep                 string             `json:"supportRep"`
	Incoterm                   string             `json:"incoterm" example:"FOB"`
	FreightTerms               string             `json:"freightTerms"`
	TotalShipUnitCount         float64            `json:"totalShipUnitCount" validate:"gte=0"`
	TotalQuantity              float64            `json:"totalQuantity" validate:"gte=0"`
	DiscountRate               float64            `json:"discountRate" validate:"gte=0"`
	BillingAddress             AddressPayload     `json:"billingAddress"`
	ShippingAddress            AddressPayload     `json:"shippingAddress"`
	EarlyPickupDate            string             `json:"earlyPickupDate" validate:"omitempty,datetime=2006-01-02"`
	LatePickupDate             string             `json:"latePickupDate" validate:"omitempty,datetime=2006-01-02"`
	Lines                      []OrderLinePayload `json:"lines" validate:"dive"`
} // @name CreateOrderRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"order already exists"`
} // @name ErrorResponse

// PostOrderHandler handles POST /orders requests.
type PostOrderHandler struct {
	svc *appsvcs.Services
}

// NewPostOrderHandler returns a PostOrderHandler backed by the given services.
func NewPostOrderHandler(svc *appsvcs.Services) *PostOrderHandler {
	return &PostOrderHandler{svc: svc}
}

// Execute creates a new order.
//
//	@Summary		Create order
//	@Description	Validates and persists a new order; line amounts are recomputed server-side
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order creation request"
//	@Success		201		{object}	models.Order
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/orders [post]
func (h *PostOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.Create(r.Context(), toDraft(req))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, order)
}

// toDraft maps the request payload onto an OrderDraft, starting from the
// draft defaults so omitted fields keep their form-level fallbacks.
func toDraft(req *CreateOrderRequest) models.OrderDraft {
	draft := models.NewDraft()
	draft.OrderNumber = req.OrderNumber
	draft.Customer = req.Customer
	draft.TransactionDate = req.TransactionDate
	if req.Status != "" {
		draft.Status = models.Status(req.Status)
	}
	draft.FromLocation = req.FromLocation
	draft.ToLocation = req.ToLocation
	for _, code := range req.PendingApprovalReasonCodes {
		draft.PendingApprovalReasonCodes = append(draft.PendingApprovalReasonCodes, models.ReasonCode(code))
	}
	draft.SupportRep = req.SupportRep
	draft.Incoterm = req.Incoterm
	draft.FreightTerms = req.FreightTerms
	draft.TotalShipUnitCount = req.TotalShipUnitCount
	draft.TotalQuantity = req.TotalQuantity
	draft.DiscountRate = req.DiscountRate
	draft.BillingAddress = toAddress(req.BillingAddress)
	draft.ShippingAddress = toAddress(req.ShippingAddress)
	draft.EarlyPickupDate = req.EarlyPickupDate
	draft.LatePickupDate = req.LatePickupDate
	for _, line := range req.Lines {
		draft.Lines = append(draft.Lines, models.OrderLine{
			Item:     line.Item,
			Units:    line.Units,
			Quantity: decimal.NewFromFloat(line.Quantity),
			Price:    decimal.NewFromFloat(line.Price),
		})
	}
	return draft
}

func toAddress(a AddressPayload) models.Address {
	return models.Address{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
