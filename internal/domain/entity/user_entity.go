package entity

import (
	"time"
)

// User is the aggregate root for user domain
// Passwords are stored as bcrypt hashes in Password field
//
// Chirps only ever reference a user by ID; users are created and changed
// through the user service, never by the chirp flow.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSummary is the public face of a user shown next to their chirps.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name}
}
