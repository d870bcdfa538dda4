package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/services/order/application/handlers"
	appsvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// OrderRoutes registers order and dashboard endpoints on the provided chi router.
func OrderRoutes(r chi.Router, a *app.Application, cfg *config.Config) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handlers.NewListOrdersHandler(svcs).Execute)
			r.Post("/", handlers.NewPostOrderHandler(svcs).Execute)
			r.Get("/{orderNumber}", handlers.NewGetOrderHandler(svcs).Execute)
			r.Delete("/{orderNumber}", handlers.NewDeleteOrderHandler(svcs).Execute)
		})
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/summary", handlers.NewGetSummaryHandler(svcs).Execute)
			r.Get("/trend", handlers.NewGetTrendHandler(svcs, cfg.TrendWindowDays).Execute)
		})
	})
}
