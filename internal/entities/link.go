package entities

import "time"

// Link represents a shortened URL entity in the database.
// Counter is the public short code: a strictly increasing integer
// unique across all links.
type Link struct {
	ID        string    `json:"id"` // UUID
	URL       string    `json:"url"`
	Counter   int64     `json:"counter"`
	CreatedAt time.Time `json:"created_at"`
}
