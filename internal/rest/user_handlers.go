package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wartakita/warta-admin/internal/warta"
)

// Users handles GET /api/users
// @Summary List users
// @Description Retrieves a page of users, optionally filtered by a case-insensitive name/email substring and an exact role
// @Tags users
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param q query string false "Substring filter on name or email"
// @Param role query string false "Exact role filter"
// @Success 200 {object} rest.UserPage
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /api/users [get]
func (h *Handler) Users(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyAuthenticated); !ok {
		return nil
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	result, err := h.m.Users(c.Request().Context(), warta.UserFilter{
		Page:  page,
		Limit: limit,
		Query: strings.TrimSpace(c.QueryParam("q")),
		Role:  strings.TrimSpace(c.QueryParam("role")),
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgUserFetchFail)
	}

	return c.JSON(http.StatusOK, NewUserPage(result))
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// UpdateUser handles PATCH /api/user
// @Summary Update a user's role (id in body)
// @Description Sets the role of the user named by the body id. The role must be USER, EDITOR or ADMIN
// @Tags users
// @Accept json
// @Produce json
// @Param body body rest.UpdateUserRequest true "User id and new role"
// @Success 200 {object} rest.UserSummary
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /api/user [patch]
func (h *Handler) UpdateUser(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyAuthenticated); !ok {
		return nil
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgValidationFailed)
	}

	if req.ID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgIDRequired})
	}

	role, ok := warta.ParseRole(req.Role)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRole})
	}

	user, err := h.m.UpdateUserRole(c.Request().Context(), req.ID, role)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgUserUpdateFail)
	}

	return c.JSON(http.StatusOK, NewUserSummary(*user))
}

// DeleteUser handles DELETE /api/user?id=
// @Summary Delete a user by query parameter
// @Description Deletes the user named by the id query parameter. The caller can never delete its own account
// @Tags users
// @Produce json
// @Param id query string true "User ID"
// @Success 200 {object} rest.SuccessResponse
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /api/user [delete]
func (h *Handler) DeleteUser(c echo.Context) error {
	pr, ok := h.authorize(c, warta.PolicyAuthenticated)
	if !ok {
		return nil
	}

	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgIDRequired})
	}

	if err := h.m.DeleteUser(c.Request().Context(), pr, id); err != nil {
		if errors.Is(err, warta.ErrSelfDelete) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgSelfDelete})
		}
		return h.handleError(c, err, http.StatusInternalServerError, msgUserDeleteFail)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// UpdateUserByID handles PATCH /api/users/:id
// @Summary Update a user's role
// @Description Sets the role of the user named by the path id. Requires ADMIN role
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body rest.UpdateUserRoleRequest true "New role"
// @Success 200 {object} rest.UserSummary
// @Failure 400,401,403,500 {object} rest.ErrorResponse
// @Router /api/users/{id} [patch]
func (h *Handler) UpdateUserByID(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyAdmin); !ok {
		return nil
	}

	var req UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, msgValidationFailed)
	}
	if err := c.Validate(&req); err != nil {
		h.log.Error("update user role validation failed", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   msgValidationFailed,
			Details: fieldErrors(err),
		})
	}

	// Role passed validation, so the parse cannot fail here.
	role, _ := warta.ParseRole(req.Role)

	user, err := h.m.UpdateUserRole(c.Request().Context(), c.Param("id"), role)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgUserUpdateFail)
	}

	return c.JSON(http.StatusOK, NewUserSummary(*user))
}

// DeleteUserByID handles DELETE /api/users/:id
// @Summary Delete a user
// @Description Deletes the user named by the path id. Requires ADMIN role; the caller can never delete its own account
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} rest.SuccessResponse
// @Failure 400,401,403,500 {object} rest.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *Handler) DeleteUserByID(c echo.Context) error {
	pr, ok := h.authorize(c, warta.PolicyAdmin)
	if !ok {
		return nil
	}

	if err := h.m.DeleteUser(c.Request().Context(), pr, c.Param("id")); err != nil {
		if errors.Is(err, warta.ErrSelfDelete) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgSelfDelete})
		}
		return h.handleError(c, err, http.StatusInternalServerError, msgUserDeleteFail)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
