//go:generate go run go.uber.org/mock/mockgen -source=chirp_service.go -destination=../../mocks/mock_chirp_indexer.go -package=mocks
package application

import (
	"context"
	"errors"
	"expvar"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/event"
	"github.com/oksasatya/chirper/internal/domain/policy"
	repo "github.com/oksasatya/chirper/internal/domain/repository"
	"github.com/oksasatya/chirper/pkg/validation"
)

var (
	chirpsCreated = expvar.NewInt("chirps_created")
	chirpsUpdated = expvar.NewInt("chirps_updated")
	chirpsDeleted = expvar.NewInt("chirps_deleted")
)

// SearchHit is a chirp returned by the search index.
type SearchHit struct {
	ID        int64   `json:"id"`
	UserID    string  `json:"user_id"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"created_at"`
	Score     float64 `json:"score"`
}

// ChirpIndexer keeps a search index of chirps. Failures never fail a chirp operation.
type ChirpIndexer interface {
	Index(ctx context.Context, c entity.Chirp) error
	Remove(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, size int) ([]SearchHit, error)
}

type ChirpService struct {
	Chirps   repo.ChirpRepository
	Events   *event.Bus
	Indexer  ChirpIndexer
	Logger   *logrus.Logger
	validate *validator.Validate
}

func NewChirpService(chirps repo.ChirpRepository, bus *event.Bus, indexer ChirpIndexer, logger *logrus.Logger) *ChirpService {
	return &ChirpService{
		Chirps:   chirps,
		Events:   bus,
		Indexer:  indexer,
		Logger:   logger,
		validate: validation.New(),
	}
}

type chirpInput struct {
	Message string `json:"message" validate:"chirpmsg"`
}

// validMessage trims the message and checks it against the chirp rules.
func (s *ChirpService) validMessage(message string) (string, error) {
	in := chirpInput{Message: strings.TrimSpace(message)}
	if err := s.validate.Struct(in); err != nil {
		return "", &ValidationError{Fields: validation.ToDetails(err)}
	}
	return in.Message, nil
}

// Create stores a chirp owned by actorID and publishes ChirpCreated.
// Subscribers run before Create returns; their failures do not affect the result.
func (s *ChirpService) Create(ctx context.Context, actorID, message string) (*entity.Chirp, error) {
	msg, err := s.validMessage(message)
	if err != nil {
		return nil, err
	}
	c, err := s.Chirps.Insert(ctx, actorID, msg)
	if err != nil {
		return nil, err
	}
	chirpsCreated.Add(1)
	s.log().WithFields(logrus.Fields{"chirp_id": c.ID, "user_id": actorID}).Info("chirp created")

	s.Events.PublishChirpCreated(ctx, event.NewChirpCreated(*c))
	s.index(ctx, *c)
	return c, nil
}

// Update replaces the message of a chirp owned by actorID. No event is published.
func (s *ChirpService) Update(ctx context.Context, actorID string, chirpID int64, message string) (*entity.Chirp, error) {
	c, err := s.find(ctx, chirpID)
	if err != nil {
		return nil, err
	}
	msg, err := s.validMessage(message)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutate(actorID, *c) {
		s.log().WithFields(logrus.Fields{"chirp_id": chirpID, "user_id": actorID}).Warn("chirp update forbidden")
		return nil, ErrForbidden
	}
	updated, err := s.Chirps.Update(ctx, chirpID, msg)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrChirpNotFound
		}
		return nil, err
	}
	chirpsUpdated.Add(1)
	s.index(ctx, *updated)
	return updated, nil
}

// Delete removes a chirp owned by actorID. No event is published.
func (s *ChirpService) Delete(ctx context.Context, actorID string, chirpID int64) error {
	c, err := s.find(ctx, chirpID)
	if err != nil {
		return err
	}
	if !policy.CanMutate(actorID, *c) {
		s.log().WithFields(logrus.Fields{"chirp_id": chirpID, "user_id": actorID}).Warn("chirp delete forbidden")
		return ErrForbidden
	}
	if err := s.Chirps.Delete(ctx, chirpID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrChirpNotFound
		}
		return err
	}
	chirpsDeleted.Add(1)
	if s.Indexer != nil {
		if err := s.Indexer.Remove(ctx, chirpID); err != nil {
			s.log().WithError(err).WithField("chirp_id", chirpID).Warn("chirp index removal failed")
		}
	}
	return nil
}

// List returns every user's chirps, newest first. actorID is the viewer; the
// listing is not filtered by it.
func (s *ChirpService) List(ctx context.Context, actorID string) ([]entity.ChirpWithAuthor, error) {
	return s.Chirps.ListAll(ctx)
}

// Search queries the chirp index. Without an index it returns no hits.
func (s *ChirpService) Search(ctx context.Context, query string, size int) ([]SearchHit, error) {
	query = strings.TrimSpace(query)
	if s.Indexer == nil || query == "" {
		return []SearchHit{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	return s.Indexer.Search(ctx, query, size)
}

func (s *ChirpService) find(ctx context.Context, id int64) (*entity.Chirp, error) {
	c, err := s.Chirps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrChirpNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *ChirpService) index(ctx context.Context, c entity.Chirp) {
	if s.Indexer == nil {
		return
	}
	if err := s.Indexer.Index(ctx, c); err != nil {
		s.log().WithError(err).WithField("chirp_id", c.ID).Warn("chirp index failed")
	}
}

func (s *ChirpService) log() *logrus.Logger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}
