package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/chirper/internal/container"
	handlers "github.com/oksasatya/chirper/internal/interface/http"
	"github.com/oksasatya/chirper/internal/interface/middleware"
	"github.com/oksasatya/chirper/pkg/helpers"
)

type NotificationModule struct {
	Handler *handlers.NotificationHandler
	JWT     *helpers.JWTManager
}

func NewNotificationModule(h *handlers.NotificationHandler, jwt *helpers.JWTManager) *NotificationModule {
	return &NotificationModule{Handler: h, JWT: jwt}
}

func (m *NotificationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/notifications")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	{
		auth.GET("", m.Handler.List)
		auth.POST("/read", m.Handler.MarkRead)
	}
}
