//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=../../mocks/mock_channel.go -package=mocks
package notification

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/chirper/config"
	"github.com/oksasatya/chirper/internal/domain/entity"
	repo "github.com/oksasatya/chirper/internal/domain/repository"
	"github.com/oksasatya/chirper/pkg/mailer"
	mailtpl "github.com/oksasatya/chirper/pkg/mailer/templates"
)

// Channel delivers a NewChirp to a single recipient.
type Channel interface {
	Deliver(ctx context.Context, recipient entity.User, n NewChirp) error
}

// JSONPublisher is the part of helpers.RabbitPublisher the mail channel needs.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// MailChannel queues a "new_chirp" email job for the email worker.
type MailChannel struct {
	Pub JSONPublisher
	Cfg *config.Config
}

func NewMailChannel(pub JSONPublisher, cfg *config.Config) *MailChannel {
	return &MailChannel{Pub: pub, Cfg: cfg}
}

func (m *MailChannel) Deliver(ctx context.Context, recipient entity.User, n NewChirp) error {
	if recipient.Email == "" {
		return errors.New("recipient has no email")
	}
	job := mailer.EmailJob{
		To:       recipient.Email,
		Template: mailtpl.NewChirp,
		Data: mailtpl.NewChirpData(m.Cfg, recipient.Name, recipient.Email, n.AuthorName,
			n.Chirp.ID, n.Chirp.Message, mailtpl.WithTime(n.Chirp.CreatedAt)),
	}
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.Pub.PublishJSON(pctx, job)
}

// DatabaseChannel stores the notification for the recipient to read later.
type DatabaseChannel struct {
	Repo repo.NotificationRepository
}

func NewDatabaseChannel(r repo.NotificationRepository) *DatabaseChannel {
	return &DatabaseChannel{Repo: r}
}

func (d *DatabaseChannel) Deliver(ctx context.Context, recipient entity.User, n NewChirp) error {
	return d.Repo.Insert(ctx, &entity.Notification{
		UserID:  recipient.ID,
		Type:    entity.NotificationTypeNewChirp,
		ChirpID: n.Chirp.ID,
		Data:    n.Data(),
	})
}

// MultiChannel delivers to every wrapped channel, even after one fails.
type MultiChannel []Channel

func (mc MultiChannel) Deliver(ctx context.Context, recipient entity.User, n NewChirp) error {
	var errs []error
	for _, c := range mc {
		if c == nil {
			continue
		}
		if err := c.Deliver(ctx, recipient, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
