package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParkNameFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"jibowu-park", "Jibowu Park"},
		{"ojota-park", "Ojota Park"},
		{"new-garage-motor-park", "New Garage Motor Park"},
		{"yaba", "Yaba"},
		{"  jibowu-park  ", "Jibowu Park"},
		{"UPPER-case", "Upper Case"},
		{"double--dash", "Double  Dash"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParkNameFromSlug(tt.slug), "slug %q", tt.slug)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "jibowu-park", Slugify("Jibowu Park"))
	assert.Equal(t, "new-garage-motor-park", Slugify("  New Garage Motor Park "))
	assert.Equal(t, "yaba-park", Slugify("yaba_park"))
}

func TestSlugRoundTrip(t *testing.T) {
	for _, name := range []string{"Jibowu Park", "Ojota Park", "New Garage Motor Park"} {
		assert.Equal(t, name, ParkNameFromSlug(Slugify(name)))
	}
}
