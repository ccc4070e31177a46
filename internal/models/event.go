package models

import "time"

// DateTimeLayout is the wall-clock layout used for Event.DateTime on the wire.
const DateTimeLayout = "2006-01-02T15:04:05"

// Event represents a volunteer event. DateTime is kept as the ISO-8601 text
// the API returned so classification reads the wall clock as written.
type Event struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	DateTime       string   `json:"date_time"`
	OrganizationID int64    `json:"organization_id"`
	Category       Category `json:"category,omitempty"`
}

// FormatDateTime renders t in DateTimeLayout, dropping any zone.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
