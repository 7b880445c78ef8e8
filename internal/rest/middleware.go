package rest

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wartakita/warta-admin/internal/warta"
)

const principalContextKey = "principal"

// withPrincipal resolves the session once per request and stashes the
// principal in the echo context. Lookup failures are logged and treated
// as "no principal" so the request still fails closed downstream.
func (h *Handler) withPrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		pr, err := h.auth.Resolve(c.Request().Context(), c.Request())
		if err != nil {
			h.log.Error("session lookup failed", "error", err)
		} else if pr != nil {
			c.Set(principalContextKey, pr)
		}

		return next(c)
	}
}

func principal(c echo.Context) *warta.Principal {
	pr, _ := c.Get(principalContextKey).(*warta.Principal)
	return pr
}

func (h *Handler) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
