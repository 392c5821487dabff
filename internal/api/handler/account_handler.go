package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-catalog-api/internal/api/metrics"
	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// AccountHandler serves self-registration, token issuance and the
// authenticated caller's own views.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register creates a new, active user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User registration details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse  "User already Exists"
// @Failure      422   {object}  messageResponse
// @Router       /register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req userRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accounts.Register(c.Request().Context(), req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return echo.NewHTTPError(http.StatusNotFound, "User already Exists").SetInternal(err)
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, user)
}

// Token exchanges credentials for a bearer token. Accepts the OAuth2
// password form or the same fields as JSON.
//
// @Summary      Issue an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Account password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  messageResponse
// @Failure      422  {object}  messageResponse
// @Router       /token [post]
func (h *AccountHandler) Token(c echo.Context) error {
	var req tokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _, err := h.accounts.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Profile returns the authenticated user.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /profile [get]
func (h *AccountHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// VerifyToken confirms the presented token and echoes the user summary.
//
// @Summary      Verify a bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  verifyTokenResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /verify-token [get]
func (h *AccountHandler) VerifyToken(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verifyTokenResponse{Valid: true, User: user.Summary()})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrWrongCredentials):
		return "wrong_credentials"
	case errors.Is(err, domain.ErrInactiveLogin):
		return "inactive"
	default:
		return "error"
	}
}
