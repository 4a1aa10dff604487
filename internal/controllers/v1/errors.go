package v1

import (
	"errors"
	"net/http"

	"github.com/finance-tracker/backend/internal/models"
)

// httpError is used for responses that only contain an error
type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a response with an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errInvalidCredentials = errors.New("the username or password is incorrect")
