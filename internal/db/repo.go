package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// UserByID returns the user with the given id, or nil when absent.
func (r *Repository) UserByID(ctx context.Context, id string) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Users returns one page of users plus the total matching count.
// search is a case-insensitive substring filter OR-combined over name
// and email; role is an exact filter. Results are ordered by name ASC.
func (r *Repository) Users(ctx context.Context, search, role string,
	limit, offset int) ([]User, int, error) {

	if limit < 1 || offset < 0 {
		return nil, 0, fmt.Errorf(
			"limit must be positive and offset non-negative: limit=%d, offset=%d",
			limit, offset,
		)
	}

	var users []User
	query := r.db.ModelContext(ctx, &users)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			q = q.WhereOr(`"t"."name" ILIKE ?`, pattern).
				WhereOr(`"t"."email" ILIKE ?`, pattern)
			return q, nil
		})
	}

	if role != "" {
		query = query.Where(`"t"."role" = ?`, role)
	}

	total, err := query.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	err = query.
		OrderExpr(`"t"."name" ASC`).
		Limit(limit).
		Offset(offset).
		Select()

	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}

	return users, total, nil
}

// UpdateUserRole sets the role column only and returns the refreshed
// row, or nil when no user with the id exists.
func (r *Repository) UpdateUserRole(ctx context.Context, id, role string) (*User, error) {
	user := &User{ID: id, Role: role}
	res, err := r.db.ModelContext(ctx, user).
		Column(Columns.User.Role).
		WherePK().
		Update()

	if err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, nil
	}

	err = r.db.ModelContext(ctx, user).WherePK().Select()
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	return user, nil
}

// DeleteUser removes the user row; the bool reports whether a row was
// actually deleted.
func (r *Repository) DeleteUser(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*User)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

// CategoryBySlug returns the category with the given slug, or nil when
// absent. Slug carries a unique constraint.
func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) InsertCategory(ctx context.Context, category *Category) error {
	_, err := r.db.ModelContext(ctx, category).Insert()
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// BreakingNews returns all banners with their linked post summaries,
// newest first.
func (r *Repository) BreakingNews(ctx context.Context) ([]BreakingNews, error) {
	var items []BreakingNews
	err := r.db.ModelContext(ctx, &items).
		Relation("Post").
		OrderExpr(`"t"."createdAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query breaking news: %w", err)
	}

	return items, nil
}

func (r *Repository) BreakingNewsByID(ctx context.Context, id string) (*BreakingNews, error) {
	item := &BreakingNews{}
	err := r.db.ModelContext(ctx, item).
		Relation("Post").
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get breaking news by id: %w", err)
	}

	return item, nil
}

// UpdateBreakingNews writes only the named columns of the item.
func (r *Repository) UpdateBreakingNews(ctx context.Context, item *BreakingNews, columns []string) error {
	if len(columns) == 0 {
		return nil
	}

	_, err := r.db.ModelContext(ctx, item).
		Column(columns...).
		WherePK().
		Update()

	if err != nil {
		return fmt.Errorf("failed to update breaking news: %w", err)
	}

	return nil
}

func (r *Repository) DeleteBreakingNews(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*BreakingNews)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete breaking news: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// PostByID returns the referenced post, or nil when absent. Used for
// the referential check before accepting a breaking-news postId.
func (r *Repository) PostByID(ctx context.Context, id string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}
