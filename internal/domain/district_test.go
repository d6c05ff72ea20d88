package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want District
	}{
		{"São Paulo!", "sao_paulo"},
		{"Bengaluru Urban", "bengaluru_urban"},
		{"  Île-de-France  ", "ile_de_france"},
		{"Ängelholm", "angelholm"},
		{"UPPER case", "upper_case"},
		{"multi   spaces & punct.", "multi_spaces_punct"},
		{"already_a_slug", "already_a_slug"},
		{"123 Main", "123_main"},
		{"---", ""},
		{"日本", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestSlugify_IdempotentOnOwnOutput(t *testing.T) {
	inputs := []string{"São Paulo!", "Bengaluru Urban", "Łódź Voivodeship", "a  b--c"}
	for _, in := range inputs {
		slug := Slugify(in)
		assert.Equal(t, slug, Slugify(string(slug)), "re-normalizing %q", slug)
	}
}

func TestDistrict_Display(t *testing.T) {
	assert.Equal(t, "Bengaluru Urban", District("bengaluru_urban").Display())
	assert.Equal(t, "Kolar", District("kolar").Display())
	assert.Equal(t, "South India General", District("south_india_general").Display())
}
