// Package errhttp maps order domain errors to HTTP responses.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/orderdesk/pkg/httpx"
	orderdomain "github.com/ghuser/orderdesk/services/order/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is()/errors.As() so wrapped errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
//
// Validation failures get a dedicated body listing every violated rule, so
// clients can surface all violations together rather than one at a time.
func WriteError(w http.ResponseWriter, err error) {
	var verr *orderdomain.ValidationError
	if errors.As(err, &verr) {
		httpx.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "Validation failed",
			"violations": verr.Violations,
		})
		return
	}
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, orderdomain.ErrOrderNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, orderdomain.ErrOrderAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, orderdomain.ErrPersistence):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}
