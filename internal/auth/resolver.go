package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/wartakita/warta-admin/internal/db"
	"github.com/wartakita/warta-admin/internal/warta"
)

// SessionCookie is the cookie the auth provider sets on sign-in.
const SessionCookie = "warta_session"

// UserSource loads the live user row behind a session, so role changes
// take effect on the next request rather than at next sign-in.
type UserSource interface {
	UserByID(ctx context.Context, id string) (*db.User, error)
}

// Resolver turns inbound request credentials into a principal. It fails
// closed: a missing, expired or orphaned session yields no principal,
// never a default identity.
type Resolver struct {
	sessions SessionStore
	users    UserSource
	now      func() time.Time
}

func NewResolver(sessions SessionStore, users UserSource) *Resolver {
	return &Resolver{
		sessions: sessions,
		users:    users,
		now:      time.Now,
	}
}

// Resolve returns the authenticated principal for the request, or nil
// when the request carries no valid session.
func (r *Resolver) Resolve(ctx context.Context, req *http.Request) (*warta.Principal, error) {
	token := ExtractToken(req)
	if token == "" {
		return nil, nil
	}

	rec, ok, err := r.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok || r.now().After(rec.ExpiresAt) {
		return nil, nil
	}

	user, err := r.users.UserByID(ctx, rec.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	return &warta.Principal{
		UserID: user.ID,
		Role:   warta.Role(user.Role),
	}, nil
}

// ExtractToken reads the session cookie, falling back to a bearer token.
func ExtractToken(req *http.Request) string {
	if c, err := req.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	header := req.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	return ""
}
