package warta

import "github.com/wartakita/warta-admin/internal/db"

func NewUser(u *db.User) User {
	role, ok := ParseRole(u.Role)
	if !ok {
		role = Role(u.Role)
	}

	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      role,
		CreatedAt: u.CreatedAt,
	}
}

func NewUsers(list []db.User) []User {
	result := make([]User, len(list))
	for i := range list {
		result[i] = NewUser(&list[i])
	}
	return result
}

func NewCategory(c *db.Category) Category {
	return Category{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Color: c.Color,
	}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(&list[i])
	}
	return result
}

func NewPostSummary(p *db.Post) *PostSummary {
	if p == nil {
		return nil
	}

	return &PostSummary{
		ID:    p.ID,
		Title: p.Title,
		Slug:  p.Slug,
	}
}

func NewBreakingNewsItem(n *db.BreakingNews) BreakingNews {
	return BreakingNews{
		ID:        n.ID,
		Text:      n.Text,
		LabelLink: n.LabelLink,
		IsActive:  n.IsActive,
		PostID:    n.PostID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Post:      NewPostSummary(n.Post),
	}
}

func NewBreakingNewsList(list []db.BreakingNews) []BreakingNews {
	result := make([]BreakingNews, len(list))
	for i := range list {
		result[i] = NewBreakingNewsItem(&list[i])
	}
	return result
}
