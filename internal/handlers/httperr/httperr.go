package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/adrewards/internal/domain"
	"github.com/GlebRadaev/adrewards/pkg/utils"
)

var statuses = []struct {
	err    error
	status int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrAlreadyCompleted, http.StatusConflict},
	{domain.ErrAccountExists, http.StatusConflict},
	{domain.ErrViewTooEarly, http.StatusTooEarly},
	{domain.ErrBelowMinimum, http.StatusUnprocessableEntity},
	{domain.ErrInvalidPaymentDetails, http.StatusUnprocessableEntity},
	{domain.ErrInvalidAd, http.StatusUnprocessableEntity},
	{domain.ErrInsufficientBalance, http.StatusPaymentRequired},
	{domain.ErrInvalidStatus, http.StatusBadRequest},
	{domain.ErrInvalidRole, http.StatusBadRequest},
}

// Status maps a domain error to its HTTP status code. Unknown errors are
// internal server errors.
func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error response. Internal errors never leak
// their message to the client.
func Respond(w http.ResponseWriter, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}
