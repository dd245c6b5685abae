package models

import "time"

// SearchRecord is one saved search in a signed-in user's history.
type SearchRecord struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	Query       string     `json:"query"`
	DisplayName string     `json:"display_name"`
	Center      Coordinate `json:"center"`
	CreatedAt   time.Time  `json:"created_at"`
}
