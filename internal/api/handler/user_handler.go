package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miramar/hotel-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	UserName string `json:"user_name" validate:"omitempty,min=6,max=255"`
	Password string `json:"password"  validate:"omitempty,min=6,max=1024"`
}

// List returns every account. Route is superAdmin-gated in the router.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByEmail returns a single account by email.
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.userService.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile changes the authenticated user's own record. The target is
// taken from the token claims, never from the body, so one account cannot
// overwrite another.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), email, ports.UpdateProfileInput{
		UserName: req.UserName,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
