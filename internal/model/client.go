package model

import "time"

// Client belongs to at most one advisor through OwnerID.
type Client struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	Denominacion string     `json:"denominacion"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
