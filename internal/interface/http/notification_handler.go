package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	repo "github.com/oksasatya/chirper/internal/domain/repository"
	"github.com/oksasatya/chirper/internal/interface/middleware"
	"github.com/oksasatya/chirper/pkg/response"
)

const defaultNotificationLimit = 50

type NotificationHandler struct {
	Repo   repo.NotificationRepository
	Logger *logrus.Logger
}

func NewNotificationHandler(r repo.NotificationRepository, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{Repo: r, Logger: logger}
}

// List returns the caller's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultNotificationLimit)))
	if err != nil || limit <= 0 || limit > 200 {
		limit = defaultNotificationLimit
	}
	items, err := h.Repo.ListForUser(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), limit)
	if err != nil {
		h.Logger.WithError(err).Error("list notifications failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	unread := 0
	for _, n := range items {
		if n.ReadAt == nil {
			unread++
		}
	}
	response.Success(c, http.StatusOK, items, "notifications", map[string]any{"count": len(items), "unread": unread})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.Repo.MarkAllRead(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		h.Logger.WithError(err).Error("mark notifications read failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"marked": n}, "notifications read", nil)
}
