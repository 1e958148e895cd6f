package notification

import (
	"context"
	"expvar"
	"fmt"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/event"
	repo "github.com/oksasatya/chirper/internal/domain/repository"
	"github.com/oksasatya/chirper/pkg/helpers"
)

const unknownAuthor = "Someone"

var (
	deliveredTotal = expvar.NewInt("notifications_delivered")
	failedTotal    = expvar.NewInt("notifications_failed")
)

// Report summarises one fan-out.
type Report struct {
	Recipients int
	Delivered  int
	Failures   []*DeliveryError
}

// Dispatcher sends a NewChirp to every user except the chirp's author.
// A failure for one recipient never stops delivery to the others.
type Dispatcher struct {
	Users   repo.UserRepository
	Channel Channel
	Logger  *logrus.Logger
}

var _ event.ChirpCreatedHandler = (*Dispatcher)(nil)

func NewDispatcher(users repo.UserRepository, ch Channel, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{Users: users, Channel: ch, Logger: logger}
}

// HandleChirpCreated runs the fan-out. Nothing escapes to the publisher.
func (d *Dispatcher) HandleChirpCreated(ctx context.Context, e event.ChirpCreated) {
	c := e.Chirp()
	log := d.log().WithFields(logrus.Fields{"chirp_id": c.ID, "author_id": c.UserID})
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("chirp fan-out panicked")
		}
	}()

	rep, err := d.Dispatch(ctx, c)
	if err != nil {
		log.WithError(err).Error("resolve recipients failed")
		return
	}
	for _, f := range rep.Failures {
		log.WithError(f.Err).WithField("recipient_id", f.RecipientID).Warn("new chirp delivery failed")
	}
	log.WithFields(logrus.Fields{
		"recipients": rep.Recipients,
		"delivered":  rep.Delivered,
		"failed":     len(rep.Failures),
	}).Info("new chirp fan-out done")
}

// Dispatch delivers c to every user but its author. It only returns an error
// when the recipients cannot be resolved.
func (d *Dispatcher) Dispatch(ctx context.Context, c entity.Chirp) (Report, error) {
	users, err := d.Users.ListExcept(ctx, c.UserID)
	if err != nil {
		return Report{}, err
	}
	recipients := lo.Filter(users, func(u entity.User, _ int) bool {
		return u.ID != c.UserID
	})
	rep := Report{Recipients: len(recipients)}
	if len(recipients) == 0 {
		return rep, nil
	}

	n := NewChirp{Chirp: c, AuthorName: d.authorName(ctx, c.UserID)}
	for _, u := range recipients {
		if err := d.deliver(ctx, u, n); err != nil {
			rep.Failures = append(rep.Failures, &DeliveryError{RecipientID: u.ID, Err: err})
			continue
		}
		rep.Delivered++
	}
	deliveredTotal.Add(int64(rep.Delivered))
	failedTotal.Add(int64(len(rep.Failures)))
	return rep, nil
}

func (d *Dispatcher) deliver(ctx context.Context, u entity.User, n NewChirp) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("channel panic: %v", r)
		}
	}()
	return d.Channel.Deliver(ctx, u, n)
}

func (d *Dispatcher) authorName(ctx context.Context, userID string) string {
	u, err := d.Users.GetByID(ctx, userID)
	if err != nil {
		d.log().WithError(err).WithField("user_id", userID).Warn("resolve chirp author failed")
		return unknownAuthor
	}
	if u.Name == "" {
		return unknownAuthor
	}
	return u.Name
}

func (d *Dispatcher) log() *logrus.Entry {
	return helpers.Component(d.Logger, "notification")
}
