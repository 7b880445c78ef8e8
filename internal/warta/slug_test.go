package warta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Lowercase", "teknologi", "teknologi"},
		{"MixedCase", "Teknologi", "teknologi"},
		{"Spaces", "berita utama", "berita-utama"},
		{"MultipleSeparators", "berita   utama!", "berita-utama"},
		{"LeadingTrailingJunk", " --olahraga-- ", "olahraga"},
		{"Digits", "Top 10 Berita", "top-10-berita"},
		{"Empty", "", ""},
		{"OnlyJunk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
