package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"hrflow/internal/auth"
	"hrflow/internal/errors"
)

// domainError converts a service error into the uniform {error, code}
// response. Unexpected errors are logged here and surface as a plain 500.
func domainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.Code == "INTERNAL_ERROR" {
		log.Error().Err(err).Msg("unhandled service error")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// requireIdentity fetches the identity the access gate resolved. Protected
// routes always have one; its absence means the request bypassed the gate.
func requireIdentity(c echo.Context) (auth.Identity, error) {
	ident, ok := auth.CurrentIdentity(c)
	if !ok {
		return auth.Identity{}, domainError(errors.ErrUnauthorized)
	}
	return ident, nil
}
