package warta

import "time"

// Role is the closed set of user roles known to the system.
type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
)

// ParseRole maps a raw string onto the role enumeration. Unknown values
// are rejected, never coerced.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleEditor:
		return Role(s), true
	}
	return "", false
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID string
	Role   Role
}

type User struct {
	ID        string
	Name      string
	Email     string
	Image     *string
	Role      Role
	CreatedAt time.Time
}

// UserPage is one page of the filtered user listing.
type UserPage struct {
	Users      []User
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

type Category struct {
	ID    string
	Name  string
	Slug  string
	Color *string
}

// PostSummary is the denormalized view of a linked post. Posts are
// managed elsewhere and read-only here.
type PostSummary struct {
	ID    string
	Title string
	Slug  string
}

type BreakingNews struct {
	ID        string
	Text      string
	LabelLink *string
	IsActive  bool
	PostID    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Post *PostSummary
}
