package notification

import (
	"fmt"

	"github.com/oksasatya/chirper/internal/domain/entity"
)

// NewChirp tells one recipient that someone else posted a chirp.
type NewChirp struct {
	Chirp      entity.Chirp
	AuthorName string
}

// Data is the payload stored with database notifications.
func (n NewChirp) Data() map[string]any {
	return map[string]any{
		"chirp_id":    n.Chirp.ID,
		"author_id":   n.Chirp.UserID,
		"author_name": n.AuthorName,
		"message":     n.Chirp.Message,
	}
}

// DeliveryError records a failed delivery to a single recipient.
type DeliveryError struct {
	RecipientID string
	Err         error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to %s: %v", e.RecipientID, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
