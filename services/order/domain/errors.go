package domain

import (
	"errors"
	"strings"
)

// Sentinel errors for the order domain. Use errors.Is() to check these.
var (
	// ErrOrderNotFound indicates the requested order does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyExists indicates an order with the same order number was already persisted.
	ErrOrderAlreadyExists = errors.New("order already exists")

	// ErrPersistence indicates the backing order document could not be written.
	// Surfaced to callers as a single generic failure; no retry, no partial rollback.
	ErrPersistence = errors.New("order store write failed")
)

// ValidationError carries every violated rule from a single validation pass.
// Callers are expected to block submission and surface all violations
// together, never one at a time.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}
