package common

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ServiceError maps an error returned by the service layer to an HTTP error.
// Validation failures become 400, missing records 404, anything else 500.
func ServiceError(message string, err error) error {
	switch {
	case errors.Is(err, actions.ErrInvalid), errors.Is(err, actions.ErrAccountNotFound):
		return huma.NewError(http.StatusBadRequest, message, err)
	case errors.Is(err, storage.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
