package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Slug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category Category
		want     string
	}{
		{CategoryEducation, "education_and_tutoring"},
		{CategoryHunger, "hunger_and_food_security"},
		{CategoryFaithBased, "faith_based_services"},
		{CategoryVeterans, "veterans_and_military_families"},
		{CategoryAnimalWelfare, "animal_welfare"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.Slug(), tt.category)
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     string
		want   Category
		wantOK bool
	}{
		{name: "label", in: "Arts & Culture", want: CategoryArts, wantOK: true},
		{name: "slug", in: "arts_and_culture", want: CategoryArts, wantOK: true},
		{name: "padded", in: "  mental_health_and_crisis_support ", want: CategoryMentalHealth, wantOK: true},
		{name: "wrong case", in: "arts & culture"},
		{name: "unknown", in: "Knitting"},
		{name: "empty", in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseCategory(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_Known(t *testing.T) {
	t.Parallel()

	assert.True(t, CategoryArts.Known())
	assert.False(t, Category("arts_and_culture").Known())
	assert.False(t, Category("Knitting").Known())
}

func TestCategories_SlugsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]Category, len(Categories))
	for _, c := range Categories {
		slug := c.Slug()
		_, dup := seen[slug]
		assert.False(t, dup, slug)
		seen[slug] = c
	}
	assert.Len(t, seen, 20)
}

func TestPermissionLevel_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, PermissionAdmin.Valid())
	assert.True(t, PermissionVolunteer.Valid())
	assert.False(t, PermissionLevel("owner").Valid())
}

func TestFormatDateTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 15, 9, 5, 7, 123, time.FixedZone("CET", 3600))
	assert.Equal(t, "2026-03-15T09:05:07", FormatDateTime(at))
}
