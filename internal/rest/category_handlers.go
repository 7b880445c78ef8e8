package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wartakita/warta-admin/internal/warta"
)

// Categories handles GET /api/categories
// @Summary List categories
// @Description Retrieves all categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /api/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyAuthenticated); !ok {
		return nil
	}

	categories, err := h.m.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgCategoryFetchFail)
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// CreateCategory handles POST /api/category
// @Summary Create a category
// @Description Creates a category; the name is lowercased and the slug derived from it. A duplicate slug is a validation failure
// @Tags categories
// @Accept json
// @Produce json
// @Param body body rest.CreateCategoryRequest true "Category payload"
// @Success 201 {object} rest.Category
// @Failure 401,422,500 {object} rest.ErrorResponse
// @Router /api/category [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyAuthenticated); !ok {
		return nil
	}

	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusUnprocessableEntity, msgValidationFailed)
	}
	if err := c.Validate(&req); err != nil {
		h.log.Error("create category validation failed", "error", err)
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   msgValidationFailed,
			Details: fieldErrors(err),
		})
	}

	category, err := h.m.CreateCategory(c.Request().Context(), warta.CategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		if ve, ok := asValidationError(err); ok {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   msgValidationFailed,
				Details: ve.Details,
			})
		}
		return h.handleError(c, err, http.StatusInternalServerError, msgCategoryCreateFail)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}

// DeleteCategory handles DELETE /api/category?id=
// @Summary Delete a category by query parameter
// @Description Deletes a category by the id query parameter
// @Tags categories
// @Produce json
// @Param id query string true "Category ID"
// @Success 200 {object} rest.SuccessResponse
// @Failure 400,401,500 {object} rest.ErrorResponse
// @Router /api/category [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyAuthenticated); !ok {
		return nil
	}

	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgIDRequired})
	}

	// A missing row deliberately falls into the catch-all, matching the
	// published contract of this endpoint.
	if err := h.m.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgCategoryDeleteFail)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// DeleteCategoryByID handles DELETE /api/categories/:id
// @Summary Delete a category
// @Description Deletes a category by id. Requires ADMIN or EDITOR role
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} rest.SuccessResponse
// @Failure 401,403,500 {object} rest.ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *Handler) DeleteCategoryByID(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyContent); !ok {
		return nil
	}

	if err := h.m.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgCategoryDeleteFail)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
