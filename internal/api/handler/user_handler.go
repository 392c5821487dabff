package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/user-catalog-api/internal/core/domain"
	"github.com/99minutos/user-catalog-api/internal/core/ports"
)

// UserHandler serves user management for any authenticated, active caller.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns every user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /users/ [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Get returns one user.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Create adds an active user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      userRequest  true  "User"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  messageResponse  "Email already registered"
// @Failure      422   {object}  messageResponse
// @Router       /users/ [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return conflictAsBadRequest(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Update replaces every writable field and rehashes the password.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "User id"
// @Param        body  body      userRequest  true  "User"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return conflictAsBadRequest(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user other than the caller.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse  "Cannot delete yourself"
// @Failure      404  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	caller, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), caller.ID, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Detail: "User deleted successfully"})
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id").SetInternal(err)
	}
	return id, nil
}

// conflictAsBadRequest pins user-management conflicts to 400.
func conflictAsBadRequest(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return echo.NewHTTPError(http.StatusBadRequest, domain.Message(err)).SetInternal(err)
	}
	return err
}
