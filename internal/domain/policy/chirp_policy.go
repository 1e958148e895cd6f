package policy

import "github.com/oksasatya/chirper/internal/domain/entity"

// CanMutate reports whether actorID may update or delete c.
// Ownership is the only criterion.
func CanMutate(actorID string, c entity.Chirp) bool {
	return actorID != "" && actorID == c.UserID
}
