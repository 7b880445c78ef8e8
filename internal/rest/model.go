package rest

import (
	"time"

	"github.com/wartakita/warta-admin/internal/warta"
)

// Localized messages, kept verbatim from the public API contract.
const (
	msgUnauthenticated    = "Tidak terautentikasi"
	msgForbidden          = "Tidak diizinkan"
	msgValidationFailed   = "Validasi gagal"
	msgIDRequired         = "Parameter id diperlukan"
	msgInvalidRole        = "Role tidak valid. Pilih USER, EDITOR, atau ADMIN."
	msgSelfDelete         = "Tidak dapat menghapus akun sendiri"
	msgBreakingNewsGone   = "Breaking news tidak ditemukan"
	msgCategoryCreateFail = "Gagal membuat kategori"
	msgCategoryDeleteFail = "Gagal menghapus kategori"
	msgCategoryFetchFail  = "Gagal mengambil data kategori"
	msgBreakingPatchFail  = "Gagal memperbarui breaking news"
	msgBreakingDeleteFail = "Gagal menghapus breaking news"
	msgBreakingFetchFail  = "Gagal mengambil data breaking news"
	msgUserUpdateFail     = "Gagal memperbarui pengguna"
	msgUserDeleteFail     = "Gagal menghapus pengguna"
	msgUserFetchFail      = "Gagal mengambil data pengguna"
)

type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CreateCategoryRequest struct {
	Name  string  `json:"name" validate:"required"`
	Color *string `json:"color"`
}

type UpdateBreakingNewsRequest struct {
	Text      warta.Optional[string] `json:"text"`
	LabelLink warta.Optional[string] `json:"labelLink"`
	PostID    warta.Optional[string] `json:"postId"`
	IsActive  warta.Optional[bool]   `json:"isActive"`
}

// UpdateUserRequest is the body of PATCH /api/user; the id travels in
// the body on this endpoint.
type UpdateUserRequest struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN EDITOR"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     *string   `json:"image"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSummary is the role-update response body: exactly id, name,
// email and role, nothing else.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UserPage struct {
	Data       []User `json:"data"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

type Category struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Color *string `json:"color"`
}

type PostSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type BreakingNews struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	LabelLink *string      `json:"labelLink"`
	IsActive  bool         `json:"isActive"`
	PostID    *string      `json:"postId"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Post      *PostSummary `json:"post,omitempty"`
}

type UploadResponse struct {
	OK    bool   `json:"ok"`
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}
