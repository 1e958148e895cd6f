package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/chirper/config"
	"github.com/oksasatya/chirper/internal/container"
	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/mocks"
)

type recordingCreator struct {
	calls []string
}

func (r *recordingCreator) Create(_ context.Context, actorID, message string) (*entity.Chirp, error) {
	r.calls = append(r.calls, actorID+":"+message)
	return &entity.Chirp{ID: int64(len(r.calls)), UserID: actorID, Message: message}, nil
}

func TestSeeder_PostsAsExistingUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().List(gomock.Any()).Return([]entity.User{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, nil)

	logger, _ := test.NewNullLogger()
	creator := &recordingCreator{}
	s := &seeder{Users: users, Chirps: creator, Generate: func() string { return "random words" }, Logger: logger}

	require.NoError(t, s.Run(context.Background(), 3))
	require.Len(t, creator.calls, 3)
	for _, c := range creator.calls {
		require.True(t, strings.HasPrefix(c, "a:") || strings.HasPrefix(c, "b:"), c)
		require.True(t, strings.HasSuffix(c, ":random words"))
	}
}

func TestSeeder_FailsWithoutUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	users.EXPECT().List(gomock.Any()).Return(nil, nil)

	logger, _ := test.NewNullLogger()
	s := &seeder{Users: users, Chirps: &recordingCreator{}, Generate: func() string { return "x" }, Logger: logger}
	require.ErrorIs(t, s.Run(context.Background(), 1), errNoUsers)
}

func TestClipAndSentence(t *testing.T) {
	long := strings.Repeat("ab ", 200)
	require.LessOrEqual(t, utf8.RuneCountInString(clip(long)), entity.MaxChirpLength)
	require.Equal(t, "short", clip("  short "))

	msg := sentence(8)()
	require.NotEmpty(t, msg)
}

func TestRun_ClosesStoreOnFailure(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := &config.Config{
		AppName:     "chirper",
		StoreDriver: config.DriverSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "chirper.db"),
	}
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRabbitPub(nil)
	container.SetES(nil)

	err := run(context.Background(), cfg, logger, 1, 5)
	require.ErrorIs(t, err, errNoUsers)
	require.Error(t, container.GetSQLite().Ping(), "store must be closed once run returns")
}
