package models

import (
	"strings"
	"time"
)

// Card represents one generated visiting card.
type Card struct {
	ID          string    `json:"id"` // Public lookup key (UUID v4), immutable
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"created_at"`
}

// FullName is the display name printed on artifacts.
func (c *Card) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
