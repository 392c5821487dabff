package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-catalog-api/internal/api/middleware"
	"github.com/99minutos/user-catalog-api/internal/core/domain"
)

// currentUser returns the user stored by the Auth middleware. A missing user
// means the route was mounted without Auth and is reported as unauthenticated.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrMissingToken
	}
	return user, nil
}
