package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/event"
	"github.com/oksasatya/chirper/internal/notification"
	"github.com/oksasatya/chirper/mocks"
)

var (
	alice = entity.User{ID: "u-alice", Name: "Alice", Email: "alice@example.com"}
	bob   = entity.User{ID: "u-bob", Name: "Bob", Email: "bob@example.com"}
	carol = entity.User{ID: "u-carol", Name: "Carol", Email: "carol@example.com"}
)

func aliceChirp() entity.Chirp {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return entity.Chirp{ID: 7, UserID: alice.ID, Message: "hello", CreatedAt: now, UpdatedAt: now}
}

func TestDispatch_DeliversToEveryoneButAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)
	logger, _ := test.NewNullLogger()

	c := aliceChirp()
	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return([]entity.User{bob, carol}, nil)
	users.EXPECT().GetByID(gomock.Any(), alice.ID).Return(&alice, nil)
	want := notification.NewChirp{Chirp: c, AuthorName: "Alice"}
	ch.EXPECT().Deliver(gomock.Any(), bob, want).Return(nil)
	ch.EXPECT().Deliver(gomock.Any(), carol, want).Return(nil)

	rep, err := notification.NewDispatcher(users, ch, logger).Dispatch(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, 2, rep.Recipients)
	require.Equal(t, 2, rep.Delivered)
	require.Empty(t, rep.Failures)
}

func TestDispatch_FiltersAuthorEvenIfStoreReturnsIt(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)
	logger, _ := test.NewNullLogger()

	c := aliceChirp()
	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return([]entity.User{alice, bob}, nil)
	users.EXPECT().GetByID(gomock.Any(), alice.ID).Return(&alice, nil)
	ch.EXPECT().Deliver(gomock.Any(), bob, gomock.Any()).Return(nil)

	rep, err := notification.NewDispatcher(users, ch, logger).Dispatch(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Recipients)
	require.Equal(t, 1, rep.Delivered)
}

func TestDispatch_OneFailureDoesNotStopOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)
	logger, _ := test.NewNullLogger()

	c := aliceChirp()
	boom := errors.New("smtp down")
	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return([]entity.User{bob, carol}, nil)
	users.EXPECT().GetByID(gomock.Any(), alice.ID).Return(&alice, nil)
	gomock.InOrder(
		ch.EXPECT().Deliver(gomock.Any(), bob, gomock.Any()).Return(boom),
		ch.EXPECT().Deliver(gomock.Any(), carol, gomock.Any()).Return(nil),
	)

	rep, err := notification.NewDispatcher(users, ch, logger).Dispatch(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Delivered)
	require.Len(t, rep.Failures, 1)
	require.Equal(t, bob.ID, rep.Failures[0].RecipientID)
	require.ErrorIs(t, rep.Failures[0], boom)
}

func TestDispatch_ChannelPanicIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)
	logger, _ := test.NewNullLogger()

	c := aliceChirp()
	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return([]entity.User{bob, carol}, nil)
	users.EXPECT().GetByID(gomock.Any(), alice.ID).Return(&alice, nil)
	ch.EXPECT().Deliver(gomock.Any(), bob, gomock.Any()).DoAndReturn(
		func(context.Context, entity.User, notification.NewChirp) error { panic("bad template") })
	ch.EXPECT().Deliver(gomock.Any(), carol, gomock.Any()).Return(nil)

	rep, err := notification.NewDispatcher(users, ch, logger).Dispatch(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Delivered)
	require.Len(t, rep.Failures, 1)
	require.Contains(t, rep.Failures[0].Error(), "bad template")
}

func TestDispatch_NoRecipientsIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)
	logger, _ := test.NewNullLogger()

	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return(nil, nil)

	rep, err := notification.NewDispatcher(users, ch, logger).Dispatch(context.Background(), aliceChirp())
	require.NoError(t, err)
	require.Zero(t, rep.Recipients)
	require.Zero(t, rep.Delivered)
}

func TestDispatch_UnknownAuthorFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)
	logger, _ := test.NewNullLogger()

	c := aliceChirp()
	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return([]entity.User{bob}, nil)
	users.EXPECT().GetByID(gomock.Any(), alice.ID).Return(nil, errors.New("gone"))
	ch.EXPECT().Deliver(gomock.Any(), bob, notification.NewChirp{Chirp: c, AuthorName: "Someone"}).Return(nil)

	_, err := notification.NewDispatcher(users, ch, logger).Dispatch(context.Background(), c)
	require.NoError(t, err)
}

func TestHandleChirpCreated_LogsRecipientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)
	logger, hook := test.NewNullLogger()

	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return(nil, errors.New("db down"))

	bus := event.NewBus()
	bus.OnChirpCreated(notification.NewDispatcher(users, ch, logger))
	require.NotPanics(t, func() {
		bus.PublishChirpCreated(context.Background(), event.NewChirpCreated(aliceChirp()))
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.ErrorLevel, entry.Level)
	require.Equal(t, "resolve recipients failed", entry.Message)
}

func TestHandleChirpCreated_LogsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)
	logger, hook := test.NewNullLogger()

	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return([]entity.User{bob}, nil)
	users.EXPECT().GetByID(gomock.Any(), alice.ID).Return(&alice, nil)
	ch.EXPECT().Deliver(gomock.Any(), bob, gomock.Any()).Return(errors.New("nope"))

	notification.NewDispatcher(users, ch, logger).HandleChirpCreated(context.Background(), event.NewChirpCreated(aliceChirp()))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, logrus.WarnLevel, entries[0].Level)
	require.Equal(t, bob.ID, entries[0].Data["recipient_id"])
	require.Equal(t, 1, entries[1].Data["failed"])
}

func TestHandleChirpCreated_WithoutLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	ch := mocks.NewMockChannel(ctrl)

	c := aliceChirp()
	users.EXPECT().ListExcept(gomock.Any(), alice.ID).Return([]entity.User{bob, carol}, nil)
	users.EXPECT().GetByID(gomock.Any(), alice.ID).Return(nil, errors.New("db gone"))
	ch.EXPECT().Deliver(gomock.Any(), bob, notification.NewChirp{Chirp: c, AuthorName: "Someone"}).Return(nil)
	ch.EXPECT().Deliver(gomock.Any(), carol, gomock.Any()).Return(errors.New("smtp down"))

	d := notification.NewDispatcher(users, ch, nil)
	require.NotPanics(t, func() {
		d.HandleChirpCreated(context.Background(), event.NewChirpCreated(c))
	})
}
