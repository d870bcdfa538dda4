package repositories

import (
	"context"

	"github.com/ghuser/orderdesk/services/order/domain/models"
)

// OrderRepository is the persistence interface for the Order aggregate.
// The domain layer owns this interface; infrastructure implements it over a
// flat JSON document with read-all / write-all semantics.
type OrderRepository interface {
	// ListAll returns the full decoded collection. A missing or corrupt
	// backing document yields an empty collection, not an error.
	ListAll(ctx context.Context) ([]models.Order, error)

	// Append persists a new order at the end of the collection.
	// Returns ErrOrderAlreadyExists when the order number is already taken,
	// ErrPersistence when the document cannot be written back.
	Append(ctx context.Context, order *models.Order) error

	// RemoveByNumber deletes every record with the given order number.
	// Removing a non-existent number is a no-op success.
	RemoveByNumber(ctx context.Context, orderNumber string) error
}
