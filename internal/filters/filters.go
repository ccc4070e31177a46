// Package filters turns a user's event filter selection into server query
// parameters and into the equivalent in-memory predicate.
package filters

import (
	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/internal/timeofday"
)

// Scope restricts events by the caller's organization memberships.
type Scope string

const (
	ScopeAll    Scope = "all"
	ScopeMyOrgs Scope = "myOrgs"
	ScopeAdmin  Scope = "admin"
)

// ParseScope maps the wire value to a Scope. Empty input means ScopeAll.
func ParseScope(s string) (Scope, bool) {
	switch Scope(s) {
	case "", ScopeAll:
		return ScopeAll, true
	case ScopeMyOrgs:
		return ScopeMyOrgs, true
	case ScopeAdmin:
		return ScopeAdmin, true
	}
	return "", false
}

// Availability is a time preference tag.
type Availability string

const (
	Mornings                = Availability(timeofday.Mornings)
	Afternoons              = Availability(timeofday.Afternoons)
	Evenings                = Availability(timeofday.Evenings)
	Weekends   Availability = "Weekends"
	Flexible   Availability = "Flexible"
)

// Known reports whether a is one of the five recognized tags.
func (a Availability) Known() bool {
	if _, ok := a.Bucket(); ok {
		return true
	}
	return a == Weekends || a == Flexible
}

// Bucket returns the time-of-day bucket behind a, if a is one.
func (a Availability) Bucket() (timeofday.Bucket, bool) {
	b := timeofday.Bucket(a)
	_, ok := timeofday.Ranges[b]
	return b, ok
}

// Filters is a filter selection. Nil slices mean "no constraint". Category
// is the legacy single-category form and is folded into Categories by
// Normalize.
type Filters struct {
	Scope        Scope             `json:"scope"`
	Availability []Availability    `json:"availability"`
	Category     models.Category   `json:"category,omitempty"`
	Categories   []models.Category `json:"categories,omitempty"`
}

// Normalize returns a copy with an explicit scope, unknown availability tags
// dropped, category slugs rewritten to labels, duplicates removed and empty
// selections turned into nil. Uncatalogued categories are kept as given; they
// match no event.
func (f Filters) Normalize() Filters {
	out := Filters{Scope: f.Scope}
	if out.Scope == "" {
		out.Scope = ScopeAll
	}

	seenTags := make(map[Availability]struct{}, len(f.Availability))
	for _, a := range f.Availability {
		if !a.Known() {
			continue
		}
		if _, dup := seenTags[a]; dup {
			continue
		}
		seenTags[a] = struct{}{}
		out.Availability = append(out.Availability, a)
	}

	all := make([]models.Category, 0, len(f.Categories)+1)
	if f.Category != "" {
		all = append(all, f.Category)
	}
	all = append(all, f.Categories...)

	seenCats := make(map[models.Category]struct{}, len(all))
	for _, c := range all {
		if c == "" {
			continue
		}
		if label, ok := models.ParseCategory(string(c)); ok {
			c = label
		}
		if _, dup := seenCats[c]; dup {
			continue
		}
		seenCats[c] = struct{}{}
		out.Categories = append(out.Categories, c)
	}
	return out
}

// availabilitySelection is the parsed shape of an availability list.
type availabilitySelection struct {
	weekends bool
	flexible bool
	buckets  []timeofday.Bucket
}

func selectAvailability(tags []Availability) availabilitySelection {
	var sel availabilitySelection
	for _, a := range tags {
		switch a {
		case Weekends:
			sel.weekends = true
		case Flexible:
			sel.flexible = true
		default:
			if b, ok := a.Bucket(); ok {
				sel.buckets = append(sel.buckets, b)
			}
		}
	}
	return sel
}

// constrained reports whether the selection narrows the result at all.
func (s availabilitySelection) constrained() bool {
	return !s.flexible && (s.weekends || len(s.buckets) > 0)
}

// organizationIDs returns the organizations a scope resolves to, in role order.
func organizationIDs(scope Scope, roles []models.Role) []int64 {
	var ids []int64
	for _, r := range roles {
		switch scope {
		case ScopeMyOrgs:
			ids = append(ids, r.OrganizationID)
		case ScopeAdmin:
			if r.PermissionLevel == models.PermissionAdmin {
				ids = append(ids, r.OrganizationID)
			}
		}
	}
	return ids
}

// NeedsRoles reports whether s is resolved against the caller's roles.
func (s Scope) NeedsRoles() bool {
	return s == ScopeMyOrgs || s == ScopeAdmin
}
