package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/chirper/internal/domain/entity"
	repo "github.com/oksasatya/chirper/internal/domain/repository"
)

var errNoUsers = errors.New("no users to post as; run the user seeder first")

type chirpCreator interface {
	Create(ctx context.Context, actorID, message string) (*entity.Chirp, error)
}

type seeder struct {
	Users    repo.UserRepository
	Chirps   chirpCreator
	Generate func() string
	Logger   *logrus.Logger
}

// Run creates count chirps, each by a user picked at random.
func (s *seeder) Run(ctx context.Context, count int) error {
	users, err := s.Users.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return errNoUsers
	}
	for i := 0; i < count; i++ {
		author := lo.Sample(users)
		c, err := s.Chirps.Create(ctx, author.ID, clip(s.Generate()))
		if err != nil {
			return fmt.Errorf("create chirp for %s: %w", author.ID, err)
		}
		s.Logger.WithFields(logrus.Fields{"chirp_id": c.ID, "user_id": author.ID, "author": author.Name}).Info("chirp seeded")
	}
	return nil
}

func sentence(words int) func() string {
	if words <= 0 {
		words = 12
	}
	return func() string { return gofakeit.Sentence(words) }
}

// clip keeps messages within the chirp length limit.
func clip(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= entity.MaxChirpLength {
		return string(r)
	}
	return strings.TrimSpace(string(r[:entity.MaxChirpLength]))
}
