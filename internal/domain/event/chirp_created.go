package event

import "github.com/oksasatya/chirper/internal/domain/entity"

const ChirpCreatedName = "chirp.created"

// ChirpCreated records that a chirp was persisted. It holds its own copy of
// the chirp so subscribers cannot change what other subscribers see.
type ChirpCreated struct {
	chirp entity.Chirp
}

func NewChirpCreated(c entity.Chirp) ChirpCreated {
	return ChirpCreated{chirp: c}
}

func (e ChirpCreated) Name() string { return ChirpCreatedName }

func (e ChirpCreated) Chirp() entity.Chirp { return e.chirp }
