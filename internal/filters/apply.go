package filters

import (
	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/internal/timeofday"
)

// Matcher is the in-memory form of a filter selection. Scope, category and
// availability combine with AND; availability tags combine with OR.
type Matcher struct {
	scope        bool
	orgs         map[int64]struct{}
	categories   map[models.Category]struct{}
	availability bool
	weekends     bool
	buckets      map[timeofday.Bucket]struct{}
}

// NewMatcher builds the predicate for f against the caller's roles.
func NewMatcher(f Filters, roles []models.Role) Matcher {
	f = f.Normalize()
	var m Matcher

	if f.Scope.NeedsRoles() {
		m.scope = true
		m.orgs = make(map[int64]struct{})
		for _, id := range organizationIDs(f.Scope, roles) {
			m.orgs[id] = struct{}{}
		}
	}

	if len(f.Categories) > 0 {
		m.categories = make(map[models.Category]struct{}, len(f.Categories))
		for _, c := range f.Categories {
			m.categories[c] = struct{}{}
		}
	}

	sel := selectAvailability(f.Availability)
	if sel.constrained() {
		m.availability = true
		m.weekends = sel.weekends
		m.buckets = make(map[timeofday.Bucket]struct{}, len(sel.buckets))
		for _, b := range sel.buckets {
			m.buckets[b] = struct{}{}
		}
	}

	return m
}

// Constrained reports whether m can reject any event.
func (m Matcher) Constrained() bool {
	return m.scope || m.categories != nil || m.availability
}

// MatchesNothing reports whether m rejects every event: a scope that
// resolved to no organization, or only uncatalogued categories.
func (m Matcher) MatchesNothing() bool {
	if m.scope && len(m.orgs) == 0 {
		return true
	}
	if m.categories == nil {
		return false
	}
	for c := range m.categories {
		if c.Known() {
			return false
		}
	}
	return true
}

// Match reports whether e satisfies every stage of the selection.
func (m Matcher) Match(e models.Event) bool {
	if m.scope {
		if _, ok := m.orgs[e.OrganizationID]; !ok {
			return false
		}
	}
	if m.categories != nil {
		if _, ok := m.categories[e.Category]; !ok {
			return false
		}
	}
	if m.availability {
		return m.matchAvailability(e.DateTime)
	}
	return true
}

func (m Matcher) matchAvailability(ts string) bool {
	if m.weekends {
		if weekend, ok := timeofday.IsWeekend(ts); ok && weekend {
			return true
		}
	}
	b, ok := timeofday.Classify(ts)
	if !ok {
		return false
	}
	_, selected := m.buckets[b]
	return selected
}

// Filter returns the events m accepts, in their original order.
func (m Matcher) Filter(events []models.Event) []models.Event {
	if !m.Constrained() {
		return events
	}
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if m.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Apply filters events locally with the same semantics the server applies
// to a fully expressed query.
func Apply(events []models.Event, f Filters, roles []models.Role) []models.Event {
	return NewMatcher(f, roles).Filter(events)
}
