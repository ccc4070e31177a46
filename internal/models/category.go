package models

import "strings"

// Category is a volunteer event category. The display label is the canonical value.
type Category string

const (
	CategoryAnimalWelfare   Category = "Animal Welfare"
	CategoryHunger          Category = "Hunger and Food Security"
	CategoryHousing         Category = "Homelessness and Housing"
	CategoryEducation       Category = "Education & Tutoring"
	CategoryYouth           Category = "Youth and Children"
	CategorySeniorCare      Category = "Senior Care and Support"
	CategoryHealth          Category = "Health & Medical"
	CategoryEnvironment     Category = "Environmental Conservation"
	CategoryCommunity       Category = "Community Development"
	CategoryArts            Category = "Arts & Culture"
	CategoryDisasterRelief  Category = "Disaster Relief"
	CategoryVeterans        Category = "Veterans & Military Families"
	CategoryImmigrants      Category = "Immigrants & Refugees"
	CategoryDisability      Category = "Disability Services"
	CategoryMentalHealth    Category = "Mental Health & Crisis Support"
	CategoryAdvocacy        Category = "Advocacy & Human Rights"
	CategoryFaithBased      Category = "Faith-Based Services"
	CategorySports          Category = "Sports & Recreation"
	CategoryJobTraining     Category = "Job Training & Employment"
	CategoryDigitalLiteracy Category = "Technology & Digital Literacy"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryAnimalWelfare,
	CategoryHunger,
	CategoryHousing,
	CategoryEducation,
	CategoryYouth,
	CategorySeniorCare,
	CategoryHealth,
	CategoryEnvironment,
	CategoryCommunity,
	CategoryArts,
	CategoryDisasterRelief,
	CategoryVeterans,
	CategoryImmigrants,
	CategoryDisability,
	CategoryMentalHealth,
	CategoryAdvocacy,
	CategoryFaithBased,
	CategorySports,
	CategoryJobTraining,
	CategoryDigitalLiteracy,
}

var categoryLookup = func() map[string]Category {
	m := make(map[string]Category, len(Categories)*2)
	for _, c := range Categories {
		m[string(c)] = c
		m[c.Slug()] = c
	}
	return m
}()

// Slug returns the snake_case identifier, e.g. "education_and_tutoring".
func (c Category) Slug() string {
	s := strings.ToLower(strings.ReplaceAll(string(c), "&", "and"))
	var b strings.Builder
	underscore := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// Known reports whether c is a catalogued display label.
func (c Category) Known() bool {
	label, ok := categoryLookup[string(c)]
	return ok && label == c
}

// ParseCategory accepts a display label or a slug.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoryLookup[strings.TrimSpace(s)]
	return c, ok
}
