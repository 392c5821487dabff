package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-catalog-api/internal/api/metrics"
	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// UserKey is the echo context key holding the authenticated *domain.User.
const UserKey = "user"

// Auth runs the access chain on the bearer token and stores the resulting
// user under UserKey. Rejections are returned as domain errors so the HTTP
// error handler picks the status and the WWW-Authenticate header.
func Auth(ac ports.AccessControl) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := ac.Authorize(c.Request().Context(), bearerToken(c))
			if err != nil {
				metrics.AccessDeniedTotal.WithLabelValues(denialReason(err)).Inc()
				return err
			}

			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// bearerToken returns the credentials of an "Authorization: Bearer <token>"
// header, or "" when the header is absent or uses another scheme.
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func denialReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid_token"
	case errors.Is(err, domain.ErrIdentityNotFound):
		return "unknown_user"
	case errors.Is(err, domain.ErrInactiveUser):
		return "inactive"
	default:
		return "error"
	}
}
