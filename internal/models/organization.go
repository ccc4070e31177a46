package models

// Organization hosts volunteer events.
type Organization struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category,omitempty"`
}
