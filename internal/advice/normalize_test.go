package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corezen-health/screening-server/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"leading dash stripped", "- Take readings daily", "Take readings daily"},
		{"en dash stripped", "– Take readings daily", "Take readings daily"},
		{"comma before and dropped", "oats, beans, and lentils", "oats, beans and lentils"},
		{"case insensitive and", "rest, And recover", "rest And recover"},
		{"double spaces collapsed", "two  spaces   here", "two spaces here"},
		{"trimmed", "  padded  ", "padded"},
		{"clean text unchanged", "Book a GP appointment within 1 to 2 weeks.", "Book a GP appointment within 1 to 2 weeks."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalization should be idempotent")
		})
	}
}

func TestNormalizeSegment(t *testing.T) {
	t.Run("keeps run separators", func(t *testing.T) {
		s := seg(bold("Your result:"), text(" Your reading is  raised, and needs review."))
		got := NormalizeSegment(s)
		assert.Equal(t, "Your result:", got.Runs[0].Text)
		assert.Equal(t, " Your reading is raised and needs review.", got.Runs[1].Text)
	})

	t.Run("user text passes through verbatim", func(t *testing.T) {
		s := seg(bold("Additional notes:"), text(" "), user("- sample  slightly cloudy, and dark"))
		got := NormalizeSegment(s)
		assert.Equal(t, "- sample  slightly cloudy, and dark", got.Runs[2].Text)
		assert.True(t, got.Runs[2].UserText)
	})

	t.Run("idempotent across runs", func(t *testing.T) {
		s := seg(bold("- Label:"), text(" body,  and tail  "))
		once := NormalizeSegment(s)
		twice := NormalizeSegment(once)
		assert.Equal(t, once, twice)
	})
}

func TestSegmentPlain(t *testing.T) {
	s := seg(bold("Your result:"), text(" all good"))
	assert.Equal(t, "Your result: all good", s.Plain())
	assert.False(t, s.IsEmpty())
	assert.True(t, domain.Segment{}.IsEmpty())
}
