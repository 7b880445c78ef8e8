package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wartakita/warta-admin/internal/warta"
)

// SessionResolver resolves request credentials into a principal. The
// concrete implementation lives in internal/auth; tests substitute a
// stub.
type SessionResolver interface {
	Resolve(ctx context.Context, req *http.Request) (*warta.Principal, error)
}

// Uploads configures local image storage.
type Uploads struct {
	Dir     string
	MaxSize int64
}

type Handler struct {
	m       *warta.Manager
	auth    SessionResolver
	uploads Uploads
	log     *slog.Logger
}

func NewHandler(m *warta.Manager, auth SessionResolver, uploads Uploads, log *slog.Logger) *Handler {
	return &Handler{
		m:       m,
		auth:    auth,
		uploads: uploads,
		log:     log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// authorize runs the session principal against the policy and writes
// the 401/403 envelope itself when the gate fails.
func (h *Handler) authorize(c echo.Context, policy warta.Policy) (*warta.Principal, bool) {
	pr := principal(c)
	switch err := warta.Authorize(pr, policy); {
	case err == nil:
		return pr, true
	case err == warta.ErrForbidden:
		_ = c.JSON(http.StatusForbidden, ErrorResponse{Error: msgForbidden})
		return nil, false
	default:
		_ = c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgUnauthenticated})
		return nil, false
	}
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
