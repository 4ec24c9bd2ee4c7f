package http

import (
	"net/http"

	"advisor-alert-srv/internal/advisoralert"
	pkgErrors "advisor-alert-srv/pkg/errors"
)

var (
	errWrongQuery = pkgErrors.NewHTTPError(140001, "Wrong query", http.StatusBadRequest)
	errWrongBody  = pkgErrors.NewHTTPError(140002, "Wrong body", http.StatusBadRequest)
	errNoScope    = pkgErrors.NewUnauthorizedHTTPError()

	errAdvisorNotFound = pkgErrors.NewHTTPError(140003, "Advisor not found", http.StatusNotFound)
	errNotAdvisor      = pkgErrors.NewHTTPError(140004, "Only advisors have alerts", http.StatusForbidden)
	errInvalidFilter   = pkgErrors.NewHTTPError(140005, "Invalid alert type or severity", http.StatusBadRequest)
	errReauthorize     = pkgErrors.NewHTTPError(140006, "Mail authorization expired, sign in again to send alerts", http.StatusUnauthorized)
	errSendFailed      = pkgErrors.NewHTTPError(140007, "Could not send the alert email, it will be retried later", http.StatusBadGateway)
)

// mapError maps domain errors to HTTP errors. Unknown errors pass through and become a 500.
func (h *Handler) mapError(err error) error {
	switch err {
	case advisoralert.ErrAdvisorNotFound:
		return errAdvisorNotFound
	case advisoralert.ErrNotAdvisor:
		return errNotAdvisor
	case advisoralert.ErrInvalidFilter:
		return errInvalidFilter
	case advisoralert.ErrReauthorizationRequired:
		return errReauthorize
	case advisoralert.ErrSendFailed:
		return errSendFailed
	}
	return err
}
