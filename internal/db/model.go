// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	User struct {
		ID, Name, Email, Image, Role, CreatedAt string
	}
	Category struct {
		ID, Name, Slug, Color string
	}
	Post struct {
		ID, Title, Slug string
	}
	BreakingNews struct {
		ID, Text, LabelLink, IsActive, PostID, CreatedAt, UpdatedAt string

		Post string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	User: struct {
		ID, Name, Email, Image, Role, CreatedAt string
	}{
		ID:        "id",
		Name:      "name",
		Email:     "email",
		Image:     "image",
		Role:      "role",
		CreatedAt: "createdAt",
	},
	Category: struct {
		ID, Name, Slug, Color string
	}{
		ID:    "id",
		Name:  "name",
		Slug:  "slug",
		Color: "color",
	},
	Post: struct {
		ID, Title, Slug string
	}{
		ID:    "id",
		Title: "title",
		Slug:  "slug",
	},
	BreakingNews: struct {
		ID, Text, LabelLink, IsActive, PostID, CreatedAt, UpdatedAt string

		Post string
	}{
		ID:        "id",
		Text:      "text",
		LabelLink: "labelLink",
		IsActive:  "isActive",
		PostID:    "postId",
		CreatedAt: "createdAt",
		UpdatedAt: "updatedAt",

		Post: "Post",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	User struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	BreakingNews struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	BreakingNews: struct {
		Name, Alias string
	}{
		Name:  "breaking_news",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID        string    `pg:"id,pk"`
	Name      string    `pg:"name,use_zero"`
	Email     string    `pg:"email,use_zero"`
	Image     *string   `pg:"image"`
	Role      string    `pg:"role,use_zero"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID    string  `pg:"id,pk"`
	Name  string  `pg:"name,use_zero"`
	Slug  string  `pg:"slug,use_zero"`
	Color *string `pg:"color"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID    string `pg:"id,pk"`
	Title string `pg:"title,use_zero"`
	Slug  string `pg:"slug,use_zero"`
}

type BreakingNews struct {
	tableName struct{} `pg:"breaking_news,alias:t,discard_unknown_columns"`

	ID        string    `pg:"id,pk"`
	Text      string    `pg:"text,use_zero"`
	LabelLink *string   `pg:"labelLink"`
	IsActive  bool      `pg:"isActive,use_zero"`
	PostID    *string   `pg:"postId"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`

	Post *Post `pg:"fk:postId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
