package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smart-erp/identity-service/internal/core/domain"
)

// toHTTPError converts a known domain error into an echo.HTTPError carrying
// the matching status code. Unknown errors pass through untouched and fall to
// the central error handler as a 500.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrRoleNameRequired):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrRoleExists),
		errors.Is(err, domain.ErrRoleInUse):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())

	case errors.Is(err, domain.ErrAccountInactive):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoleNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return err
}
