package entity

import "time"

const NotificationTypeNewChirp = "new_chirp"

// Notification is a stored notification addressed to a single user.
type Notification struct {
	ID        int64          `json:"id"`
	UserID    string         `json:"user_id"`
	Type      string         `json:"type"`
	ChirpID   int64          `json:"chirp_id"`
	Data      map[string]any `json:"data"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
