package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/chirper/internal/container"
	handlers "github.com/oksasatya/chirper/internal/interface/http"
	"github.com/oksasatya/chirper/internal/interface/middleware"
	"github.com/oksasatya/chirper/pkg/helpers"
)

type ChirpModule struct {
	Handler *handlers.ChirpHandler
	JWT     *helpers.JWTManager
}

func NewChirpModule(h *handlers.ChirpHandler, jwt *helpers.JWTManager) *ChirpModule {
	return &ChirpModule{Handler: h, JWT: jwt}
}

func (m *ChirpModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()
	auth := rg.Group("/chirps")
	auth.Use(
		middleware.Auth(rdb, m.JWT),
		middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	// posting fans out to every user; tighter limit
	writeLimiter := middleware.RateLimit(rdb, 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	{
		auth.GET("", m.Handler.List)
		auth.GET("/search", m.Handler.Search)
		auth.POST("", writeLimiter, m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.PATCH("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
