package warta

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wartakita/warta-admin/internal/db"
)

// Store is the persistence surface the manager needs. *db.Repository
// implements it; tests substitute a fake.
type Store interface {
	UserByID(ctx context.Context, id string) (*db.User, error)
	Users(ctx context.Context, search, role string, limit, offset int) ([]db.User, int, error)
	UpdateUserRole(ctx context.Context, id, role string) (*db.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)

	Categories(ctx context.Context) ([]db.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*db.Category, error)
	InsertCategory(ctx context.Context, category *db.Category) error
	DeleteCategory(ctx context.Context, id string) (bool, error)

	BreakingNews(ctx context.Context) ([]db.BreakingNews, error)
	BreakingNewsByID(ctx context.Context, id string) (*db.BreakingNews, error)
	UpdateBreakingNews(ctx context.Context, item *db.BreakingNews, columns []string) error
	DeleteBreakingNews(ctx context.Context, id string) (bool, error)

	PostByID(ctx context.Context, id string) (*db.Post, error)
}

// Manager performs the validated mutations behind the admin API. It
// holds no per-request state; everything lives in the store.
type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
	}
}

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

type CategoryInput struct {
	Name  string
	Color *string
}

// CreateCategory lowercases the name, derives the slug and persists the
// category. A slug collision is a validation failure on the name field,
// not a distinct conflict outcome.
func (m *Manager) CreateCategory(ctx context.Context, in CategoryInput) (*Category, error) {
	name := strings.ToLower(strings.TrimSpace(in.Name))
	if name == "" {
		return nil, &ValidationError{
			Details: FieldErrors{"name": {"Nama kategori wajib diisi"}},
		}
	}

	slug := Slugify(name)

	existing, err := m.store.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db check category slug: %w", err)
	}
	if existing != nil {
		return nil, &ValidationError{
			Details: FieldErrors{"name": {"Kategori dengan nama ini sudah ada"}},
		}
	}

	row := &db.Category{
		ID:    uuid.NewString(),
		Name:  name,
		Slug:  slug,
		Color: in.Color,
	}
	if err := m.store.InsertCategory(ctx, row); err != nil {
		return nil, fmt.Errorf("db insert category: %w", err)
	}

	category := NewCategory(row)
	return &category, nil
}

func (m *Manager) DeleteCategory(ctx context.Context, id string) error {
	deleted, err := m.store.DeleteCategory(ctx, id)
	if err != nil {
		return fmt.Errorf("db delete category: %w", err)
	}
	if !deleted {
		return &NotFoundError{Resource: "category"}
	}

	return nil
}

func (m *Manager) BreakingNews(ctx context.Context) ([]BreakingNews, error) {
	list, err := m.store.BreakingNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get breaking news: %w", err)
	}

	return NewBreakingNewsList(list), nil
}

// BreakingNewsPatch is a tri-state partial update: fields left absent
// are not touched, explicit nulls clear the nullable fields.
type BreakingNewsPatch struct {
	Text      Optional[string]
	LabelLink Optional[string]
	PostID    Optional[string]
	IsActive  Optional[bool]
}

// PatchBreakingNews applies only the explicitly present fields of the
// patch. A non-null postId must reference an existing post; the record
// stays unmodified when the check fails.
func (m *Manager) PatchBreakingNews(ctx context.Context, id string, patch BreakingNewsPatch) (*BreakingNews, error) {
	existing, err := m.store.BreakingNewsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get breaking news: %w", err)
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: "breaking news"}
	}

	if patch.PostID.Present && !patch.PostID.Null {
		post, err := m.store.PostByID(ctx, patch.PostID.Value)
		if err != nil {
			return nil, fmt.Errorf("db check post: %w", err)
		}
		if post == nil {
			return nil, &ValidationError{
				Message: "Post tidak ditemukan",
				Details: FieldErrors{"postId": {"Post tidak ditemukan"}},
			}
		}
	}

	var columns []string
	if patch.Text.Present {
		existing.Text = patch.Text.Value
		columns = append(columns, db.Columns.BreakingNews.Text)
	}
	if patch.LabelLink.Present {
		existing.LabelLink = patch.LabelLink.Ptr()
		columns = append(columns, db.Columns.BreakingNews.LabelLink)
	}
	if patch.PostID.Present {
		existing.PostID = patch.PostID.Ptr()
		columns = append(columns, db.Columns.BreakingNews.PostID)
	}
	if patch.IsActive.Present {
		existing.IsActive = patch.IsActive.Value
		columns = append(columns, db.Columns.BreakingNews.IsActive)
	}

	if len(columns) > 0 {
		existing.UpdatedAt = m.now()
		columns = append(columns, db.Columns.BreakingNews.UpdatedAt)
		if err := m.store.UpdateBreakingNews(ctx, existing, columns); err != nil {
			return nil, fmt.Errorf("db update breaking news: %w", err)
		}
	}

	updated, err := m.store.BreakingNewsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db reload breaking news: %w", err)
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "breaking news"}
	}

	item := NewBreakingNewsItem(updated)
	return &item, nil
}

func (m *Manager) DeleteBreakingNews(ctx context.Context, id string) error {
	deleted, err := m.store.DeleteBreakingNews(ctx, id)
	if err != nil {
		return fmt.Errorf("db delete breaking news: %w", err)
	}
	if !deleted {
		return &NotFoundError{Resource: "breaking news"}
	}

	return nil
}

// UserFilter carries the user listing parameters before clamping.
type UserFilter struct {
	Page  int
	Limit int
	Query string
	Role  string
}

// Users returns one page of the filtered user listing. Page is forced
// to at least 1, limit is clamped to 1..100.
func (m *Manager) Users(ctx context.Context, filter UserFilter) (*UserPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	rows, total, err := m.store.Users(ctx,
		strings.TrimSpace(filter.Query),
		strings.TrimSpace(filter.Role),
		limit, (page-1)*limit,
	)
	if err != nil {
		return nil, fmt.Errorf("db get users: %w", err)
	}

	return &UserPage{
		Users:      NewUsers(rows),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// UpdateUserRole sets the role of the user. Role validity is the
// caller's concern; the Role type is already a member of the closed set.
func (m *Manager) UpdateUserRole(ctx context.Context, id string, role Role) (*User, error) {
	updated, err := m.store.UpdateUserRole(ctx, id, string(role))
	if err != nil {
		return nil, fmt.Errorf("db update user role: %w", err)
	}
	if updated == nil {
		return nil, &NotFoundError{Resource: "user"}
	}

	user := NewUser(updated)
	return &user, nil
}

// DeleteUser removes the user unless it is the caller's own account.
// The self-deletion rule applies regardless of role and is checked
// before touching storage.
func (m *Manager) DeleteUser(ctx context.Context, pr *Principal, id string) error {
	if pr != nil && pr.UserID == id {
		return ErrSelfDelete
	}

	deleted, err := m.store.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("db delete user: %w", err)
	}
	if !deleted {
		return &NotFoundError{Resource: "user"}
	}

	return nil
}
