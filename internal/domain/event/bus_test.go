package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oksasatya/chirper/internal/domain/entity"
)

func TestBus_PublishChirpCreated(t *testing.T) {
	t.Run("subscribers run in order before publish returns", func(t *testing.T) {
		req := require.New(t)
		bus := NewBus()
		var calls []string
		bus.OnChirpCreated(
			ChirpCreatedHandlerFunc(func(_ context.Context, e ChirpCreated) {
				calls = append(calls, "first:"+e.Chirp().Message)
			}),
			ChirpCreatedHandlerFunc(func(_ context.Context, e ChirpCreated) {
				calls = append(calls, "second:"+e.Chirp().Message)
			}),
		)

		bus.PublishChirpCreated(context.Background(), NewChirpCreated(entity.Chirp{ID: 7, Message: "hi"}))

		req.Equal([]string{"first:hi", "second:hi"}, calls)
	})

	t.Run("no subscribers is a no-op", func(t *testing.T) {
		require.NotPanics(t, func() {
			NewBus().PublishChirpCreated(context.Background(), NewChirpCreated(entity.Chirp{}))
		})
	})

	t.Run("nil bus is a no-op", func(t *testing.T) {
		var bus *Bus
		require.NotPanics(t, func() {
			bus.PublishChirpCreated(context.Background(), NewChirpCreated(entity.Chirp{}))
		})
	})
}

func TestChirpCreated_IsACopy(t *testing.T) {
	req := require.New(t)
	chirp := entity.Chirp{ID: 1, UserID: "u1", Message: "original"}
	evt := NewChirpCreated(chirp)

	chirp.Message = "changed after publish"
	got := evt.Chirp()
	got.Message = "changed by subscriber"

	req.Equal("original", evt.Chirp().Message)
	req.Equal(ChirpCreatedName, evt.Name())
}
