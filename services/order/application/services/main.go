package services

import (
	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/cache"
	"github.com/ghuser/orderdesk/services/order/infrastructure/persistence/jsonfile"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Order     *OrderService
	Dashboard *DashboardService
}

// New wires all order application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := jsonfile.NewOrderRepository(a.Store, a.EventBus)
	orderCache := cache.NewOrderCache(a.Redis)
	return &Services{
		Order:     NewOrderService(repo, orderCache),
		Dashboard: NewDashboardService(repo),
	}
}
