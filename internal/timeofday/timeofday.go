// Package timeofday classifies event timestamps into time-of-day buckets and
// weekend/weekday days. Inputs are ISO-8601 strings read as written; no zone
// conversion is applied.
package timeofday

import (
	"regexp"
	"strconv"
	"time"
)

// Bucket is a named time-of-day window.
type Bucket string

const (
	Mornings   Bucket = "Mornings"
	Afternoons Bucket = "Afternoons"
	Evenings   Bucket = "Evenings"
)

// Range is an inclusive hour window.
type Range struct {
	Start int
	End   int
}

// Contains reports whether hour falls inside r.
func (r Range) Contains(hour int) bool {
	return hour >= r.Start && hour <= r.End
}

// Buckets lists the buckets in chronological order.
var Buckets = []Bucket{Mornings, Afternoons, Evenings}

// Ranges maps each bucket to its hours. 22:00-05:59 belongs to no bucket.
var Ranges = map[Bucket]Range{
	Mornings:   {Start: 6, End: 11},
	Afternoons: {Start: 12, End: 16},
	Evenings:   {Start: 17, End: 21},
}

var (
	clockPattern = regexp.MustCompile(`(\d{2}):(\d{2})`)
	datePattern  = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

// Hour extracts the hour of the first HH:MM found in ts.
func Hour(ts string) (int, bool) {
	m := clockPattern.FindStringSubmatch(ts)
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return h, true
}

// Classify returns the bucket for the hour in ts. It reports false for
// late-night hours and for input without an HH:MM component.
func Classify(ts string) (Bucket, bool) {
	h, ok := Hour(ts)
	if !ok {
		return "", false
	}
	for _, b := range Buckets {
		if Ranges[b].Contains(h) {
			return b, true
		}
	}
	return "", false
}

// Date extracts the YYYY-MM-DD component of ts as a UTC midnight. Dates that
// time.Date would roll over (month 13, February 30) are rejected.
func Date(ts string) (time.Time, bool) {
	m := datePattern.FindStringSubmatch(ts)
	if m == nil {
		return time.Time{}, false
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])

	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != mo || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// IsWeekend reports whether the date in ts is a Saturday or Sunday. ok is
// false when ts carries no valid calendar date.
func IsWeekend(ts string) (weekend bool, ok bool) {
	t, ok := Date(ts)
	if !ok {
		return false, false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday, true
}
