package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wartakita/warta-admin/internal/warta"
)

// BreakingNewsList handles GET /api/breaking-news
// @Summary List breaking news banners
// @Description Retrieves all breaking news banners with their linked post summaries, newest first
// @Tags breaking-news
// @Produce json
// @Success 200 {array} rest.BreakingNews
// @Failure 401,500 {object} rest.ErrorResponse
// @Router /api/breaking-news [get]
func (h *Handler) BreakingNewsList(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyAuthenticated); !ok {
		return nil
	}

	items, err := h.m.BreakingNews(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgBreakingFetchFail)
	}

	return c.JSON(http.StatusOK, Map(items, NewBreakingNews))
}

// UpdateBreakingNews handles PATCH /api/breaking-news/:id
// @Summary Partially update a breaking news banner
// @Description Applies only the fields present in the body; explicit nulls clear labelLink and postId. A non-null postId must reference an existing post. Requires ADMIN or EDITOR role
// @Tags breaking-news
// @Accept json
// @Produce json
// @Param id path string true "Breaking news ID"
// @Param body body rest.UpdateBreakingNewsRequest true "Partial update"
// @Success 200 {object} rest.BreakingNews
// @Failure 401,403,404,422,500 {object} rest.ErrorResponse
// @Router /api/breaking-news/{id} [patch]
func (h *Handler) UpdateBreakingNews(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyContent); !ok {
		return nil
	}

	var req UpdateBreakingNewsRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusUnprocessableEntity, msgValidationFailed)
	}

	if details := validateBreakingNewsPatch(&req); len(details) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   msgValidationFailed,
			Details: details,
		})
	}

	item, err := h.m.PatchBreakingNews(c.Request().Context(), c.Param("id"), warta.BreakingNewsPatch{
		Text:      req.Text,
		LabelLink: req.LabelLink,
		PostID:    req.PostID,
		IsActive:  req.IsActive,
	})
	if err != nil {
		if isNotFound(err) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: msgBreakingNewsGone})
		}
		if ve, ok := asValidationError(err); ok {
			message := ve.Message
			if message == "" {
				message = msgValidationFailed
			}
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   message,
				Details: ve.Details,
			})
		}
		return h.handleError(c, err, http.StatusInternalServerError, msgBreakingPatchFail)
	}

	return c.JSON(http.StatusOK, NewBreakingNews(*item))
}

// validateBreakingNewsPatch rejects fields that are present but carry
// values the schema does not allow. text is not nullable and must be
// non-empty when set.
func validateBreakingNewsPatch(req *UpdateBreakingNewsRequest) map[string][]string {
	details := map[string][]string{}

	if req.Text.Present {
		if req.Text.Null || strings.TrimSpace(req.Text.Value) == "" {
			details["text"] = append(details["text"], "Teks tidak boleh kosong")
		}
	}
	if req.IsActive.Present && req.IsActive.Null {
		details["isActive"] = append(details["isActive"], "Nilai tidak valid")
	}

	return details
}

// DeleteBreakingNews handles DELETE /api/breaking-news/:id
// @Summary Delete a breaking news banner
// @Description Deletes a breaking news banner by id. Requires ADMIN or EDITOR role
// @Tags breaking-news
// @Produce json
// @Param id path string true "Breaking news ID"
// @Success 200 {object} rest.SuccessResponse
// @Failure 401,403,500 {object} rest.ErrorResponse
// @Router /api/breaking-news/{id} [delete]
func (h *Handler) DeleteBreakingNews(c echo.Context) error {
	if _, ok := h.authorize(c, warta.PolicyContent); !ok {
		return nil
	}

	if err := h.m.DeleteBreakingNews(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgBreakingDeleteFail)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
