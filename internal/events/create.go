package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/helping-hands/discovery/internal/models"
)

// CreateRequest is the body for POST /api/events and PUT /api/events/:id.
type CreateRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	DateTime       string `json:"date_time" binding:"required"`
	OrganizationID int64  `json:"organization_id" binding:"required,gt=0"`
	Category       string `json:"category"`
}

// Accepted date_time layouts. Offsets are dropped; the wall clock is stored.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	models.DateTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// NewEvent is a validated CreateRequest ready for insertion.
type NewEvent struct {
	Name           string
	Description    string
	Location       string
	DateTime       time.Time
	OrganizationID int64
	Category       models.Category
}

// ValidateCreate trims and checks req.
func ValidateCreate(req CreateRequest) (NewEvent, error) {
	ev := NewEvent{
		Name:           strings.TrimSpace(req.Name),
		Description:    strings.TrimSpace(req.Description),
		Location:       strings.TrimSpace(req.Location),
		OrganizationID: req.OrganizationID,
	}
	if ev.Name == "" {
		return NewEvent{}, errors.New("name is required")
	}
	if len(ev.Name) > 200 {
		return NewEvent{}, errors.New("name is too long (200 characters tops)")
	}
	if ev.OrganizationID <= 0 {
		return NewEvent{}, errors.New("organization_id must be positive")
	}

	t, err := parseDateTime(req.DateTime)
	if err != nil {
		return NewEvent{}, err
	}
	ev.DateTime = t

	if req.Category != "" {
		c, ok := models.ParseCategory(req.Category)
		if !ok {
			return NewEvent{}, fmt.Errorf("unknown category %q", req.Category)
		}
		ev.Category = c
	}
	return ev, nil
}

func (ev NewEvent) stored(id int64) *models.Event {
	return &models.Event{
		ID:             id,
		Name:           ev.Name,
		Description:    ev.Description,
		Location:       ev.Location,
		DateTime:       models.FormatDateTime(ev.DateTime),
		OrganizationID: ev.OrganizationID,
		Category:       ev.Category,
	}
}

func parseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			// keep the wall clock as written
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date_time %q", s)
}
