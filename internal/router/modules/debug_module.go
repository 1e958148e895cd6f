package modules

import (
	"expvar"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/chirper/internal/container"
	"github.com/oksasatya/chirper/internal/domain/repository"
	"github.com/oksasatya/chirper/internal/interface/middleware"
	"github.com/oksasatya/chirper/pkg/response"
)

// DebugModule exposes process counters and a small store summary.
type DebugModule struct {
	Chirps repository.ChirpRepository
	Driver string
}

func NewDebugModule(chirps repository.ChirpRepository, driver string) *DebugModule {
	return &DebugModule{Chirps: chirps, Driver: driver}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	debug := rg.Group("/debug", middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil))
	debug.GET("/vars", gin.WrapH(expvar.Handler()))
	debug.GET("/stats", m.stats)
}

func (m *DebugModule) stats(c *gin.Context) {
	n, err := m.Chirps.Count(c.Request.Context())
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"store": m.Driver, "chirps": n}, "OK", nil)
}
