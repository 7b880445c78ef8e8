package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wartakita/warta-admin/internal/db"
	"github.com/wartakita/warta-admin/internal/warta"
)

type fakeSessions struct {
	records map[string]Record
}

func (f *fakeSessions) Get(ctx context.Context, token string) (Record, bool, error) {
	rec, ok := f.records[token]
	return rec, ok, nil
}

func (f *fakeSessions) Save(ctx context.Context, token string, rec Record) error {
	f.records[token] = rec
	return nil
}

func (f *fakeSessions) Delete(ctx context.Context, token string) error {
	delete(f.records, token)
	return nil
}

type fakeUsers struct {
	userByIDFunc func(ctx context.Context, id string) (*db.User, error)
}

func (f *fakeUsers) UserByID(ctx context.Context, id string) (*db.User, error) {
	if f.userByIDFunc != nil {
		return f.userByIDFunc(ctx, id)
	}
	return nil, nil
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newResolver := func(sessions SessionStore, users UserSource) *Resolver {
		r := NewResolver(sessions, users)
		r.now = func() time.Time { return now }
		return r
	}

	adminUser := &db.User{ID: "u1", Name: "Adi", Email: "adi@warta.test", Role: "ADMIN"}

	t.Run("NoTokenYieldsNoPrincipal", func(t *testing.T) {
		r := newResolver(&fakeSessions{}, &fakeUsers{})

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		pr, err := r.Resolve(ctx, req)
		require.NoError(t, err)
		assert.Nil(t, pr)
	})

	t.Run("ValidCookieSession", func(t *testing.T) {
		sessions := &fakeSessions{records: map[string]Record{
			"tok": {UserID: "u1", ExpiresAt: now.Add(time.Hour)},
		}}
		users := &fakeUsers{userByIDFunc: func(ctx context.Context, id string) (*db.User, error) {
			if id == "u1" {
				return adminUser, nil
			}
			return nil, nil
		}}
		r := newResolver(sessions, users)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok"})

		pr, err := r.Resolve(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, pr)
		assert.Equal(t, &warta.Principal{UserID: "u1", Role: warta.RoleAdmin}, pr)
	})

	t.Run("BearerHeaderFallback", func(t *testing.T) {
		sessions := &fakeSessions{records: map[string]Record{
			"tok": {UserID: "u1", ExpiresAt: now.Add(time.Hour)},
		}}
		users := &fakeUsers{userByIDFunc: func(ctx context.Context, id string) (*db.User, error) {
			return adminUser, nil
		}}
		r := newResolver(sessions, users)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer tok")

		pr, err := r.Resolve(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, pr)
	})

	t.Run("ExpiredSessionFailsClosed", func(t *testing.T) {
		sessions := &fakeSessions{records: map[string]Record{
			"tok": {UserID: "u1", ExpiresAt: now.Add(-time.Minute)},
		}}
		r := newResolver(sessions, &fakeUsers{})

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok"})

		pr, err := r.Resolve(ctx, req)
		require.NoError(t, err)
		assert.Nil(t, pr)
	})

	t.Run("OrphanedSessionFailsClosed", func(t *testing.T) {
		sessions := &fakeSessions{records: map[string]Record{
			"tok": {UserID: "gone", ExpiresAt: now.Add(time.Hour)},
		}}
		r := newResolver(sessions, &fakeUsers{})

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "tok"})

		pr, err := r.Resolve(ctx, req)
		require.NoError(t, err)
		assert.Nil(t, pr)
	})
}

func TestExtractToken(t *testing.T) {
	t.Run("CookieWinsOverHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-tok"})
		req.Header.Set("Authorization", "Bearer header-tok")

		assert.Equal(t, "cookie-tok", ExtractToken(req))
	})

	t.Run("NonBearerHeaderIgnored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")

		assert.Empty(t, ExtractToken(req))
	})
}
