package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/chirper/config"
	"github.com/oksasatya/chirper/internal/container"
	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/pkg/helpers"
	"github.com/oksasatya/chirper/pkg/validation"
)

func newTestServer(t *testing.T) (*gin.Engine, Repositories) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()
	helpers.PasswordCost = bcrypt.MinCost

	logger, _ := test.NewNullLogger()
	cfg := &config.Config{
		AppName:             "chirper",
		StoreDriver:         config.DriverSQLite,
		SQLitePath:          ":memory:",
		DebugMetricsEnabled: true,
	}
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetJWT(helpers.NewJWTManager("a-secret", "r-secret", time.Minute, time.Hour))
	container.SetRedis(nil)
	container.SetRabbitPub(nil)
	container.SetES(nil)

	closeStore, err := container.OpenStore(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(closeStore)

	r := gin.New()
	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return r, BuildRepositories()
}

func seedUser(t *testing.T, repos Repositories, name string) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword("password123")
	require.NoError(t, err)
	u := &entity.User{Email: name + "@example.com", Password: hash, Name: name}
	require.NoError(t, repos.Users.Create(context.Background(), u))
	return u
}

func login(t *testing.T, r *gin.Engine, email string) []*http.Cookie {
	t.Helper()
	body := `{"email":"` + email + `","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return w.Result().Cookies()
}

func call(r *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_RequireAuth(t *testing.T) {
	r, _ := newTestServer(t)
	for _, path := range []string{"/api/chirps", "/api/notifications", "/api/profile"} {
		w := call(r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoutes_LoginPostAndNotify(t *testing.T) {
	r, repos := newTestServer(t)
	seedUser(t, repos, "alice")
	seedUser(t, repos, "bob")

	w := call(r, http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"wrongpass"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	alice := login(t, r, "alice@example.com")
	bob := login(t, r, "bob@example.com")

	w = call(r, http.MethodPost, "/api/chirps", `{"message":"hello from alice"}`, alice)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(r, http.MethodGet, "/api/notifications", "", bob)
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []entity.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data, 1)
	require.Equal(t, "alice", env.Data[0].Data["author_name"])

	w = call(r, http.MethodGet, "/api/notifications", "", alice)
	var own struct {
		Data []entity.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &own))
	require.Empty(t, own.Data)

	w = call(r, http.MethodGet, "/api/profile", "", alice)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "alice@example.com")
}

func TestRoutes_DebugVars(t *testing.T) {
	r, _ := newTestServer(t)
	w := call(r, http.MethodGet, "/api/debug/vars", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "chirps_created")
}

func TestRoutes_DebugStats(t *testing.T) {
	r, repos := newTestServer(t)
	u := seedUser(t, repos, "dora")
	_, err := repos.Chirps.Insert(context.Background(), u.ID, "counted")
	require.NoError(t, err)

	w := call(r, http.MethodGet, "/api/debug/stats", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"store":"sqlite","chirps":1}`, string(mustData(t, w)))
}

func TestRoutes_UnknownRouteEnvelope(t *testing.T) {
	r, _ := newTestServer(t)

	w := call(r, http.MethodGet, "/api/nope", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "route not found")

	w = call(r, http.MethodPut, "/api/login", "", nil)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	require.Contains(t, w.Body.String(), `"success":false`)
}

func mustData(t *testing.T, w *httptest.ResponseRecorder) json.RawMessage {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}
