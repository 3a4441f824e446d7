package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Men's Chill Crew Neck Sweatshirt", "mens_chill_crew_neck_sweatshirt"},
		{"Simple", "simple"},
		{"UPPER CASE TITLE", "upper_case_title"},
		{"keep-other.punctuation!", "keep-other.punctuation!"},
		{"trailing space ", "trailing_space_"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestProductToPlain(t *testing.T) {
	p := Product{
		Title: "Jacket",
		Slug:  "jacket",
		Price: 200,
		Stock: 3,
		Images: []ProductImage{
			{URL: "a.jpg"},
			{URL: "b.jpg"},
		},
	}

	plain := p.ToPlain()

	assert.Equal(t, "Jacket", plain.Title)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, plain.Images, "image order must be preserved")
}

func TestProductToPlainNoImages(t *testing.T) {
	p := Product{Title: "Bare"}

	plain := p.ToPlain()

	assert.NotNil(t, plain.Images)
	assert.Empty(t, plain.Images)
}
