package events

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/gorilla/schema"

	"github.com/helping-hands/discovery/internal/filters"
	"github.com/helping-hands/discovery/internal/models"
)

// ListQuery is the parsed query string of GET /api/events. Each set field
// narrows the result (AND); repeated values of one field combine with OR.
type ListQuery struct {
	BeginTime       string   `schema:"begin_time"`
	EndTime         string   `schema:"end_time"`
	BeginDate       string   `schema:"begin_date"`
	EndDate         string   `schema:"end_date"`
	IsWeekday       *bool    `schema:"is_weekday"`
	OrganizationIDs []int64  `schema:"organization_id"`
	Categories      []string `schema:"category"`
	Availability    []string `schema:"availability"`
}

var clockValue = regexp.MustCompile(`^\d{2}:\d{2}$`)

var decoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// DecodeListQuery decodes and validates query parameters. Category slugs are
// rewritten to their display labels.
func DecodeListQuery(values url.Values) (ListQuery, error) {
	var q ListQuery
	if err := decoder.Decode(&q, values); err != nil {
		return ListQuery{}, fmt.Errorf("decode query: %w", err)
	}
	if err := ValidateListQuery(&q); err != nil {
		return ListQuery{}, err
	}
	return q, nil
}

// ValidateListQuery checks formats and canonicalizes categories in place.
func ValidateListQuery(q *ListQuery) error {
	for _, f := range []struct{ name, v string }{{"begin_time", q.BeginTime}, {"end_time", q.EndTime}} {
		name, v := f.name, f.v
		if v == "" {
			continue
		}
		if !clockValue.MatchString(v) {
			return fmt.Errorf("%s must be HH:MM", name)
		}
		if _, err := time.Parse("15:04", v); err != nil {
			return fmt.Errorf("%s is not a valid time of day", name)
		}
	}

	for _, f := range []struct{ name, v string }{{"begin_date", q.BeginDate}, {"end_date", q.EndDate}} {
		name, v := f.name, f.v
		if v == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, v); err != nil {
			return fmt.Errorf("%s must be YYYY-MM-DD", name)
		}
	}

	for i, raw := range q.Categories {
		c, ok := models.ParseCategory(raw)
		if !ok {
			return fmt.Errorf("unknown category %q", raw)
		}
		q.Categories[i] = string(c)
	}

	for _, raw := range q.Availability {
		if !filters.Availability(raw).Known() {
			return fmt.Errorf("unknown availability %q", raw)
		}
	}

	for _, id := range q.OrganizationIDs {
		if id <= 0 {
			return errors.New("organization_id must be positive")
		}
	}
	return nil
}
