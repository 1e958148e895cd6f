package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/chirper/pkg/response"
)

// Module mounts a feature's routes under the API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}

// Registry collects modules and the middleware shared by every /api route.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mods ...Module) {
	for _, m := range mods {
		if m != nil {
			r.modules = append(r.modules, m)
		}
	}
}

// RegisterAll mounts every module and answers unknown routes with the
// standard JSON envelope. Call it once, after all Add calls.
func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}

	r.Engine.HandleMethodNotAllowed = true
	r.Engine.NoRoute(func(c *gin.Context) {
		response.Error[any](c, http.StatusNotFound, "route not found", gin.H{"path": c.Request.URL.Path})
	})
	r.Engine.NoMethod(func(c *gin.Context) {
		response.Error[any](c, http.StatusMethodNotAllowed, "method not allowed", gin.H{"method": c.Request.Method})
	})
}
