package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/chirper/internal/application"
	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/event"
	"github.com/oksasatya/chirper/internal/infrastructure/sqlite"
	"github.com/oksasatya/chirper/internal/notification"
)

// recordingChannel remembers deliveries and fails for recipients listed in failFor.
type recordingChannel struct {
	failFor   map[string]bool
	delivered map[string][]notification.NewChirp
}

func (r *recordingChannel) Deliver(_ context.Context, u entity.User, n notification.NewChirp) error {
	if r.failFor[u.ID] {
		return errors.New("mailbox unavailable")
	}
	if r.delivered == nil {
		r.delivered = map[string][]notification.NewChirp{}
	}
	r.delivered[u.ID] = append(r.delivered[u.ID], n)
	return nil
}

type flow struct {
	users  *sqlite.UserRepository
	chirps *sqlite.ChirpRepository
	ch     *recordingChannel
	svc    *application.ChirpService
}

func newFlow(t *testing.T) *flow {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	logger, _ := test.NewNullLogger()
	f := &flow{
		users:  sqlite.NewUserRepository(db),
		chirps: sqlite.NewChirpRepository(db),
		ch:     &recordingChannel{failFor: map[string]bool{}},
	}
	bus := event.NewBus()
	bus.OnChirpCreated(notification.NewDispatcher(f.users, f.ch, logger))
	f.svc = application.NewChirpService(f.chirps, bus, nil, logger)
	return f
}

func (f *flow) user(t *testing.T, name string) *entity.User {
	t.Helper()
	u := &entity.User{Email: name + "@example.com", Password: "hash", Name: name}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *flow) count(t *testing.T) int {
	t.Helper()
	n, err := f.chirps.Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestFlow_CreateThenList(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	a := f.user(t, "alice")

	c, err := f.svc.Create(ctx, a.ID, "Test Chirp Message")
	require.NoError(t, err)
	require.Equal(t, 1, f.count(t))

	list, err := f.svc.List(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, c.ID, list[0].ID)
	require.Equal(t, a.ID, list[0].UserID)
	require.Equal(t, "Test Chirp Message", list[0].Message)
	require.Equal(t, "alice", list[0].Author.Name)
}

func TestFlow_NotifiesOnlyOtherUsers(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	a := f.user(t, "alice")
	b := f.user(t, "bob")

	c, err := f.svc.Create(ctx, a.ID, "hello bob")
	require.NoError(t, err)

	require.Len(t, f.ch.delivered[b.ID], 1)
	require.Equal(t, c.ID, f.ch.delivered[b.ID][0].Chirp.ID)
	require.Equal(t, "alice", f.ch.delivered[b.ID][0].AuthorName)
	require.Empty(t, f.ch.delivered[a.ID])

	others, err := f.users.ListExcept(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, others, 1)
	require.Equal(t, b.ID, others[0].ID)
}

func TestFlow_FailedRecipientDoesNotFailCreate(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	a := f.user(t, "alice")
	b := f.user(t, "bob")
	c := f.user(t, "carol")
	f.ch.failFor[b.ID] = true

	_, err := f.svc.Create(ctx, a.ID, "still works")
	require.NoError(t, err)
	require.Empty(t, f.ch.delivered[b.ID])
	require.Len(t, f.ch.delivered[c.ID], 1)
}

func TestFlow_EmptyUpdateKeepsOriginal(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	a := f.user(t, "alice")
	c, err := f.svc.Create(ctx, a.ID, "original")
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, a.ID, c.ID, "")
	var verr *application.ValidationError
	require.ErrorAs(t, err, &verr)

	got, err := f.chirps.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "original", got.Message)
}

func TestFlow_OtherUserCannotMutate(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	a := f.user(t, "alice")
	b := f.user(t, "bob")
	c, err := f.svc.Create(ctx, a.ID, "mine")
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.Delete(ctx, b.ID, c.ID), application.ErrForbidden)
	_, err = f.svc.Update(ctx, b.ID, c.ID, "yours now")
	require.ErrorIs(t, err, application.ErrForbidden)

	require.Equal(t, 1, f.count(t))
	got, err := f.chirps.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, a.ID, got.UserID)
	require.Equal(t, "mine", got.Message)
}

func TestFlow_OwnerUpdatesAndDeletes(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t)
	a := f.user(t, "alice")
	b := f.user(t, "bob")
	c, err := f.svc.Create(ctx, a.ID, "first")
	require.NoError(t, err)

	updated, err := f.svc.Update(ctx, a.ID, c.ID, "Updated chirp message")
	require.NoError(t, err)
	require.Equal(t, c.ID, updated.ID)
	require.Equal(t, a.ID, updated.UserID)
	require.Equal(t, "Updated chirp message", updated.Message)
	require.Len(t, f.ch.delivered[b.ID], 1, "updates do not notify")

	require.NoError(t, f.svc.Delete(ctx, a.ID, c.ID))
	require.Zero(t, f.count(t))

	_, err = f.svc.Update(ctx, a.ID, c.ID, "gone")
	require.ErrorIs(t, err, application.ErrChirpNotFound)
}
