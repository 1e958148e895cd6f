package event

import "context"

// ChirpCreatedHandler is implemented by subscribers of ChirpCreated.
type ChirpCreatedHandler interface {
	HandleChirpCreated(ctx context.Context, e ChirpCreated)
}

// ChirpCreatedHandlerFunc adapts a plain function to ChirpCreatedHandler.
type ChirpCreatedHandlerFunc func(ctx context.Context, e ChirpCreated)

func (f ChirpCreatedHandlerFunc) HandleChirpCreated(ctx context.Context, e ChirpCreated) {
	f(ctx, e)
}

// Bus is a synchronous in-process publisher. Subscribers are registered while
// wiring the application and run in registration order on the publishing
// goroutine; Publish returns after every subscriber has returned.
type Bus struct {
	chirpCreated []ChirpCreatedHandler
}

func NewBus() *Bus { return &Bus{} }

func (b *Bus) OnChirpCreated(h ...ChirpCreatedHandler) {
	b.chirpCreated = append(b.chirpCreated, h...)
}

func (b *Bus) PublishChirpCreated(ctx context.Context, e ChirpCreated) {
	if b == nil {
		return
	}
	for _, h := range b.chirpCreated {
		h.HandleChirpCreated(ctx, e)
	}
}
