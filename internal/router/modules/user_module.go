package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/chirper/internal/container"
	handlers "github.com/oksasatya/chirper/internal/interface/http"
	"github.com/oksasatya/chirper/internal/interface/middleware"
	"github.com/oksasatya/chirper/pkg/helpers"
)

// UserModule wires session routes.
// Public: POST /api/login, POST /api/refresh
// Protected: POST /api/logout, GET /api/profile
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()) // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(rdb, m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/profile", m.Handler.GetProfile)
	}
}
