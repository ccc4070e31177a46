package filters

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/internal/timeofday"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters Filters
		roles   []models.Role
		want    []int64
	}{
		{name: "scope all", filters: Filters{Scope: ScopeAll}, roles: sampleRoles(), want: []int64{1, 2, 3, 4}},
		{name: "my orgs", filters: Filters{Scope: ScopeMyOrgs}, roles: sampleRoles(), want: []int64{1, 2, 3}},
		{name: "admin orgs", filters: Filters{Scope: ScopeAdmin}, roles: sampleRoles(), want: []int64{1, 3}},
		{name: "my orgs without roles", filters: Filters{Scope: ScopeMyOrgs}, want: []int64{}},
		{name: "legacy category", filters: Filters{Category: models.CategoryEducation}, want: []int64{2, 4}},
		{name: "no matching category", filters: Filters{Category: models.CategoryHealth}, want: []int64{}},
		{
			name:    "multiple categories",
			filters: Filters{Categories: []models.Category{models.CategoryCommunity, models.CategoryEnvironment}},
			want:    []int64{1, 3},
		},
		{name: "weekends", filters: Filters{Availability: []Availability{Weekends}}, want: []int64{1, 3}},
		{name: "mornings", filters: Filters{Availability: []Availability{Mornings}}, want: []int64{1, 3}},
		{name: "evenings", filters: Filters{Availability: []Availability{Evenings}}, want: []int64{2}},
		{
			name:    "mornings or evenings",
			filters: Filters{Availability: []Availability{Mornings, Evenings}},
			want:    []int64{1, 2, 3},
		},
		{
			name:    "weekends or afternoons",
			filters: Filters{Availability: []Availability{Weekends, Afternoons}},
			want:    []int64{1, 3, 4},
		},
		{name: "flexible", filters: Filters{Availability: []Availability{Flexible}}, want: []int64{1, 2, 3, 4}},
		{
			name:    "flexible overrides the rest",
			filters: Filters{Availability: []Availability{Evenings, Flexible}},
			want:    []int64{1, 2, 3, 4},
		},
		{
			name: "stages combine with and",
			filters: Filters{
				Scope:        ScopeMyOrgs,
				Category:     models.CategoryEducation,
				Availability: []Availability{Evenings},
			},
			roles: sampleRoles(),
			want:  []int64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(sampleEvents(), tt.filters, tt.roles)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_CategorySlugs(t *testing.T) {
	t.Parallel()

	got := Apply(sampleEvents(), Filters{Categories: []models.Category{"education_and_tutoring"}}, nil)
	assert.Equal(t, []int64{2, 4}, ids(got))

	got = Apply(sampleEvents(), Filters{
		Category:     "education_and_tutoring",
		Availability: []Availability{Mornings, Evenings},
	}, nil)
	assert.Equal(t, []int64{2}, ids(got))
}

func TestMatcher_MatchesNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters Filters
		roles   []models.Role
		want    bool
	}{
		{name: "no selection", filters: Filters{}},
		{name: "scope with organizations", filters: Filters{Scope: ScopeAdmin}, roles: sampleRoles()},
		{name: "scope without organizations", filters: Filters{Scope: ScopeAdmin}, roles: sampleRoles()[1:], want: true},
		{name: "catalogued category", filters: Filters{Categories: []models.Category{"arts_and_culture"}}},
		{name: "uncatalogued category", filters: Filters{Category: "Knitting"}, want: true},
		{name: "mixed categories", filters: Filters{Categories: []models.Category{"Knitting", models.CategoryHealth}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NewMatcher(tt.filters, tt.roles).MatchesNothing())
		})
	}
}

func TestApply_Identity(t *testing.T) {
	t.Parallel()

	events := sampleEvents()
	got := Apply(events, Filters{Scope: ScopeAll}, sampleRoles())

	assert.Equal(t, events, got)
}

func TestApply_EndToEnd(t *testing.T) {
	t.Parallel()

	f := Filters{
		Scope:        ScopeAdmin,
		Category:     models.CategoryEnvironment,
		Availability: []Availability{Mornings},
	}

	got := Apply(sampleEvents(), f, sampleRoles())

	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestApply_LateNight(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: 1, DateTime: "2026-03-14T23:30:00"}, // Saturday
		{ID: 2, DateTime: "2026-03-16T23:30:00"}, // Monday
		{ID: 3, DateTime: "not a date"},
	}

	assert.Equal(t, []int64{1}, ids(Apply(events, Filters{Availability: []Availability{Weekends, Evenings}}, nil)))
	assert.Empty(t, Apply(events, Filters{Availability: []Availability{Mornings, Afternoons, Evenings}}, nil))
}

// The server evaluates Params; the matcher must turn that into the exact
// selection whenever the plan says it is not exact.
func TestPlanQuery_RefinedServerResultMatchesLocal(t *testing.T) {
	t.Parallel()

	selections := []Filters{
		{Availability: []Availability{Mornings, Evenings}},
		{Availability: []Availability{Weekends, Afternoons}},
		{Scope: ScopeMyOrgs},
		{Scope: ScopeAdmin, Availability: []Availability{Weekends}},
	}

	for _, f := range selections {
		for _, roles := range [][]models.Role{sampleRoles(), nil} {
			plan := PlanQuery(f, roles)
			server := serverSide(sampleEvents(), plan.Params)

			got := server
			if !plan.Exact {
				got = NewMatcher(f, roles).Filter(server)
			}

			assert.Equal(t, ids(Apply(sampleEvents(), f, roles)), ids(got), "filters %+v roles %d", f, len(roles))
		}
	}
}

// serverSide mimics the listing endpoint's AND semantics for the parameters
// the translator emits.
func serverSide(events []models.Event, q QueryParams) []models.Event {
	var out []models.Event
	for _, e := range events {
		if orgs := q.All(ParamOrganizationID); len(orgs) > 0 && !slices.Contains(orgs, strconv.FormatInt(e.OrganizationID, 10)) {
			continue
		}
		if cats := q.All(ParamCategory); len(cats) > 0 && !slices.Contains(cats, string(e.Category)) {
			continue
		}
		if q.Get(ParamIsWeekday) == "false" {
			if weekend, _ := timeofday.IsWeekend(e.DateTime); !weekend {
				continue
			}
		}
		if begin := q.Get(ParamBeginTime); begin != "" && e.DateTime[11:16] < begin {
			continue
		}
		if end := q.Get(ParamEndTime); end != "" && e.DateTime[11:16] > end {
			continue
		}
		out = append(out, e)
	}
	return out
}
