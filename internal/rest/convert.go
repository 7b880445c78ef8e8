package rest

import "github.com/wartakita/warta-admin/internal/warta"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewUser(u warta.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func NewUserSummary(u warta.User) UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

func NewUserPage(p *warta.UserPage) UserPage {
	return UserPage{
		Data:       Map(p.Users, NewUser),
		Total:      p.Total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

func NewCategory(c warta.Category) Category {
	return Category{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Color: c.Color,
	}
}

func NewPostSummary(p *warta.PostSummary) *PostSummary {
	if p == nil {
		return nil
	}

	return &PostSummary{
		ID:    p.ID,
		Title: p.Title,
		Slug:  p.Slug,
	}
}

func NewBreakingNews(n warta.BreakingNews) BreakingNews {
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
