package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/chirper/internal/application"
	"github.com/oksasatya/chirper/internal/domain/entity"
	"github.com/oksasatya/chirper/internal/interface/middleware"
	"github.com/oksasatya/chirper/pkg/response"
	"github.com/oksasatya/chirper/pkg/validation"
)

type ChirpHandler struct {
	Svc    *application.ChirpService
	Logger *logrus.Logger
}

func NewChirpHandler(svc *application.ChirpService, logger *logrus.Logger) *ChirpHandler {
	return &ChirpHandler{Svc: svc, Logger: logger}
}

type chirpRequest struct {
	Message string `json:"message"`
}

// chirpView is a chirp as rendered in listings.
type chirpView struct {
	entity.Chirp
	Author entity.UserSummary `json:"user"`
	Edited bool               `json:"edited"`
}

func (h *ChirpHandler) List(c *gin.Context) {
	chirps, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		h.fail(c, err)
		return
	}
	views := lo.Map(chirps, func(cw entity.ChirpWithAuthor, _ int) chirpView {
		return chirpView{Chirp: cw.Chirp, Author: cw.Author, Edited: cw.Edited()}
	})
	response.Success(c, http.StatusOK, views, "chirps", map[string]any{"count": len(views)})
}

func (h *ChirpHandler) Create(c *gin.Context) {
	var req chirpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	chirp, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req.Message)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, chirp, "chirp created", nil)
}

func (h *ChirpHandler) Update(c *gin.Context) {
	id, ok := chirpID(c)
	if !ok {
		return
	}
	var req chirpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	chirp, err := h.Svc.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), id, req.Message)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, chirp, "chirp updated", nil)
}

func (h *ChirpHandler) Delete(c *gin.Context) {
	id, ok := chirpID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "chirp deleted", nil)
}

func (h *ChirpHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		h.Logger.WithError(err).Warn("chirp search failed")
		response.Error[any](c, http.StatusBadGateway, "search unavailable", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

// chirpID parses the :id path param; malformed ids are reported as not found.
func chirpID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusNotFound, "chirp not found", nil)
		return 0, false
	}
	return id, true
}

func (h *ChirpHandler) fail(c *gin.Context, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		response.Error[any](c, http.StatusUnprocessableEntity, "validation failed", verr.Fields)
	case errors.Is(err, application.ErrChirpNotFound):
		response.Error[any](c, http.StatusNotFound, "chirp not found", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, "forbidden", nil)
	default:
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("chirp request failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
