package rest

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

const defaultUploadMaxSize = 5 << 20 // 5 MiB

// Upload handles POST /api/upload
// @Summary Upload an image
// @Description Stores a multipart image under the uploads directory and returns its public URL. JPG, PNG, GIF and WebP up to 5 MiB are accepted
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} rest.UploadResponse
// @Failure 400,500 {object} rest.UploadResponse
// @Router /api/upload [post]
func (h *Handler) Upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, UploadResponse{
			Error: "No file uploaded",
		})
	}

	if !allowedImageTypes[file.Header.Get("Content-Type")] {
		return c.JSON(http.StatusBadRequest, UploadResponse{
			Error: "Format file tidak didukung. Gunakan JPG, PNG, GIF, atau WebP.",
		})
	}

	maxSize := h.uploads.MaxSize
	if maxSize <= 0 {
		maxSize = defaultUploadMaxSize
	}
	if file.Size > maxSize {
		return c.JSON(http.StatusBadRequest, UploadResponse{
			Error: "Ukuran file terlalu besar. Maksimal 5MB.",
		})
	}

	src, err := file.Open()
	if err != nil {
		return h.uploadError(c, err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploads.Dir, 0o755); err != nil {
		return h.uploadError(c, err)
	}

	filename := uploadFilename(file.Filename, time.Now())
	dst, err := os.Create(filepath.Join(h.uploads.Dir, filename))
	if err != nil {
		return h.uploadError(c, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return h.uploadError(c, err)
	}

	return c.JSON(http.StatusOK, UploadResponse{
		OK:  true,
		URL: "/uploads/" + filename,
	})
}

func (h *Handler) uploadError(c echo.Context, err error) error {
	h.log.Error("upload failed", "error", err)
	return c.JSON(http.StatusInternalServerError, UploadResponse{
		Error: "Terjadi kesalahan saat upload file.",
	})
}

// uploadFilename builds a unique name: millisecond timestamp, then the
// sanitized original base name capped at 30 characters, then the
// original extension.
func uploadFilename(original string, now time.Time) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)

	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, base)
	if len(sanitized) > 30 {
		sanitized = sanitized[:30]
	}

	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), sanitized, ext)
}
