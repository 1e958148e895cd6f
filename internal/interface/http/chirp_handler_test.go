package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/chirper/internal/application"
	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/domain/event"
	"github.com/oksasatya/chirper/internal/infrastructure/sqlite"
	"github.com/oksasatya/chirper/internal/interface/middleware"
	"github.com/oksasatya/chirper/internal/notification"
	"github.com/oksasatya/chirper/pkg/validation"
)

const testUserHeader = "X-Test-User"

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   json.RawMessage `json:"error"`
}

type api struct {
	router *gin.Engine
	alice  *entity.User
	bob    *entity.User
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))

	logger, _ := test.NewNullLogger()
	users := sqlite.NewUserRepository(db)
	notes := sqlite.NewNotificationRepository(db)

	bus := event.NewBus()
	bus.OnChirpCreated(notification.NewDispatcher(users, notification.NewDatabaseChannel(notes), logger))
	svc := application.NewChirpService(sqlite.NewChirpRepository(db), bus, nil, logger)

	a := &api{}
	for _, name := range []string{"alice", "bob"} {
		u := &entity.User{Email: name + "@example.com", Password: "hash", Name: name}
		require.NoError(t, users.Create(context.Background(), u))
		if name == "alice" {
			a.alice = u
		} else {
			a.bob = u
		}
	}

	r := gin.New()
	g := r.Group("/api", func(c *gin.Context) {
		c.Set(middleware.CtxUserIDKey, c.GetHeader(testUserHeader))
	})
	ch := NewChirpHandler(svc, logger)
	g.GET("/chirps", ch.List)
	g.POST("/chirps", ch.Create)
	g.GET("/chirps/search", ch.Search)
	g.PUT("/chirps/:id", ch.Update)
	g.PATCH("/chirps/:id", ch.Update)
	g.DELETE("/chirps/:id", ch.Delete)
	nh := NewNotificationHandler(notes, logger)
	g.GET("/notifications", nh.List)
	g.POST("/notifications/read", nh.MarkRead)
	a.router = r
	return a
}

func (a *api) do(t *testing.T, method, path, user, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(testUserHeader, user)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func (a *api) create(t *testing.T, user, msg string) entity.Chirp {
	t.Helper()
	code, env := a.do(t, http.MethodPost, "/api/chirps", user, `{"message":`+quote(msg)+`}`)
	require.Equal(t, http.StatusCreated, code)
	var c entity.Chirp
	require.NoError(t, json.Unmarshal(env.Data, &c))
	return c
}

func TestChirpAPI_CreateAndList(t *testing.T) {
	a := newAPI(t)
	created := a.create(t, a.alice.ID, "Test Chirp Message")
	require.Equal(t, a.alice.ID, created.UserID)

	code, env := a.do(t, http.MethodGet, "/api/chirps", a.bob.ID, "")
	require.Equal(t, http.StatusOK, code)

	var list []chirpView
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)
	require.Equal(t, "alice", list[0].Author.Name)
	require.False(t, list[0].Edited)
}

func TestChirpAPI_ValidationIs422(t *testing.T) {
	a := newAPI(t)
	code, env := a.do(t, http.MethodPost, "/api/chirps", a.alice.ID, `{"message":"   "}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	require.Contains(t, string(env.Error), "message")

	code, _ = a.do(t, http.MethodPost, "/api/chirps", a.alice.ID, `{"message":`+quote(strings.Repeat("a", 256))+`}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = a.do(t, http.MethodPost, "/api/chirps", a.alice.ID, `{"message":`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestChirpAPI_UpdateAndDeleteAuthorization(t *testing.T) {
	a := newAPI(t)
	c := a.create(t, a.alice.ID, "mine")
	path := "/api/chirps/" + itoa(c.ID)

	code, env := a.do(t, http.MethodPut, path, a.bob.ID, `{"message":"hijack"}`)
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, "forbidden", env.Message)

	code, _ = a.do(t, http.MethodDelete, path, a.bob.ID, "")
	require.Equal(t, http.StatusForbidden, code)

	code, env = a.do(t, http.MethodPatch, path, a.alice.ID, `{"message":"Updated chirp message"}`)
	require.Equal(t, http.StatusOK, code)
	var updated entity.Chirp
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Equal(t, "Updated chirp message", updated.Message)
	require.Equal(t, a.alice.ID, updated.UserID)

	code, _ = a.do(t, http.MethodDelete, path, a.alice.ID, "")
	require.Equal(t, http.StatusOK, code)

	code, _ = a.do(t, http.MethodDelete, path, a.alice.ID, "")
	require.Equal(t, http.StatusNotFound, code)
}

func TestChirpAPI_MalformedIDIsNotFound(t *testing.T) {
	a := newAPI(t)
	code, _ := a.do(t, http.MethodPut, "/api/chirps/abc", a.alice.ID, `{"message":"x"}`)
	require.Equal(t, http.StatusNotFound, code)
}

func TestChirpAPI_SearchWithoutIndexIsEmpty(t *testing.T) {
	a := newAPI(t)
	code, env := a.do(t, http.MethodGet, "/api/chirps/search?q=hello", a.alice.ID, "")
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 0, env.Meta["count"])
}

func TestNotificationAPI(t *testing.T) {
	a := newAPI(t)
	c := a.create(t, a.alice.ID, "hi bob")

	code, env := a.do(t, http.MethodGet, "/api/notifications", a.bob.ID, "")
	require.Equal(t, http.StatusOK, code)
	var items []entity.Notification
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	require.Equal(t, c.ID, items[0].ChirpID)
	require.EqualValues(t, 1, env.Meta["unread"])

	code, env = a.do(t, http.MethodGet, "/api/notifications", a.alice.ID, "")
	require.Equal(t, http.StatusOK, code)
	require.EqualValues(t, 0, env.Meta["count"])

	code, _ = a.do(t, http.MethodPost, "/api/notifications/read", a.bob.ID, "")
	require.Equal(t, http.StatusOK, code)
	_, env = a.do(t, http.MethodGet, "/api/notifications", a.bob.ID, "")
	require.EqualValues(t, 0, env.Meta["unread"])
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
