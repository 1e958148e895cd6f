package entity

import "time"

// MaxChirpLength is the maximum number of characters in a chirp message.
const MaxChirpLength = 255

// Chirp is a short text post owned by exactly one user.
// UserID is fixed at creation; only Message and UpdatedAt change afterwards.
type Chirp struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Edited reports whether the chirp changed after it was created.
func (c Chirp) Edited() bool {
	return c.UpdatedAt.After(c.CreatedAt)
}

// ChirpWithAuthor is the read model used for chirp listings.
type ChirpWithAuthor struct {
	Chirp
	Author UserSummary `json:"user"`
}
