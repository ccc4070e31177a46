package filters

import (
	"fmt"
	"strconv"

	"github.com/helping-hands/discovery/internal/models"
	"github.com/helping-hands/discovery/internal/timeofday"
)

// Query parameter names understood by the events listing endpoint.
const (
	ParamOrganizationID = "organization_id"
	ParamCategory       = "category"
	ParamIsWeekday      = "is_weekday"
	ParamBeginTime      = "begin_time"
	ParamEndTime        = "end_time"
)

// Plan is the server half of a filter selection.
type Plan struct {
	Params QueryParams
	// Exact is false when Params admit events the selection excludes; the
	// server result must then be narrowed with a Matcher.
	Exact bool
}

// Translate renders f as events-endpoint query parameters. organization_id
// values follow role order and category values follow selection order. An
// availability selection the AND-only endpoint cannot express produces no
// availability parameters at all.
func Translate(f Filters, roles []models.Role) QueryParams {
	return PlanQuery(f, roles).Params
}

// PlanQuery translates f and reports whether the parameters are exact.
func PlanQuery(f Filters, roles []models.Role) Plan {
	f = f.Normalize()
	plan := Plan{Exact: true}

	if f.Scope.NeedsRoles() {
		ids := organizationIDs(f.Scope, roles)
		for _, id := range ids {
			plan.Params.Add(ParamOrganizationID, strconv.FormatInt(id, 10))
		}
		// An empty organization list has no query-string form; sending
		// nothing would widen the result to every organization.
		if len(ids) == 0 {
			plan.Exact = false
		}
	}

	if len(f.Categories) > 0 {
		emitted := 0
		for _, c := range f.Categories {
			// Uncatalogued categories match no stored event.
			if !c.Known() {
				continue
			}
			plan.Params.Add(ParamCategory, string(c))
			emitted++
		}
		if emitted == 0 {
			plan.Exact = false
		}
	}

	sel := selectAvailability(f.Availability)
	switch {
	case !sel.constrained():
	case sel.weekends && len(sel.buckets) > 0:
		// Weekends OR time-of-day is a disjunction; leave it to the matcher.
		plan.Exact = false
	case sel.weekends:
		plan.Params.Set(ParamIsWeekday, "false")
	default:
		cover, exact := coveringRange(sel.buckets)
		plan.Params.Set(ParamBeginTime, fmt.Sprintf("%02d:00", cover.Start))
		plan.Params.Set(ParamEndTime, fmt.Sprintf("%02d:59", cover.End))
		if !exact {
			plan.Exact = false
		}
	}

	return plan
}

// coveringRange returns the smallest hour window containing every bucket in
// selected, and whether that window contains no unselected bucket.
func coveringRange(selected []timeofday.Bucket) (timeofday.Range, bool) {
	picked := make(map[timeofday.Bucket]struct{}, len(selected))
	cover := timeofday.Range{Start: 24, End: -1}
	for _, b := range selected {
		picked[b] = struct{}{}
		r := timeofday.Ranges[b]
		cover.Start = min(cover.Start, r.Start)
		cover.End = max(cover.End, r.End)
	}

	for _, b := range timeofday.Buckets {
		if _, ok := picked[b]; ok {
			continue
		}
		r := timeofday.Ranges[b]
		if r.Start >= cover.Start && r.End <= cover.End {
			return cover, false
		}
	}
	return cover, true
}
