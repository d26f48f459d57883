package models

import "time"

// Identification represents one identified disc photo
type Identification struct {
	ID         string    `json:"id"`
	SourceName string    `json:"source_name"`
	Title      string    `json:"title"`
	Filename   string    `json:"filename"`
	Provider   string    `json:"provider,omitempty"`
	Model      string    `json:"model,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
