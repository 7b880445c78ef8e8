package rest

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all routes for the handler
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(h.requestLogger)
	e.Use(h.withPrincipal)

	e.GET("/health", h.handleHealth)

	api := e.Group("/api")

	api.GET("/categories", h.Categories)
	api.DELETE("/categories/:id", h.DeleteCategoryByID)
	api.POST("/category", h.CreateCategory)
	api.DELETE("/category", h.DeleteCategory)

	api.GET("/breaking-news", h.BreakingNewsList)
	api.PATCH("/breaking-news/:id", h.UpdateBreakingNews)
	api.DELETE("/breaking-news/:id", h.DeleteBreakingNews)

	api.GET("/users", h.Users)
	api.PATCH("/users/:id", h.UpdateUserByID)
	api.DELETE("/users/:id", h.DeleteUserByID)
	api.PATCH("/user", h.UpdateUser)
	api.DELETE("/user", h.DeleteUser)

	api.POST("/upload", h.Upload)

	if h.uploads.Dir != "" {
		e.Static("/uploads", h.uploads.Dir)
	}

	return e
}
