package router

import "github.com/gin-gonic/gin"

// apiBase is the prefix every feature module registers under.
const apiBase = "/api"

// Registry collects feature modules and mounts them on the shared /api
// group. InitModules fills it; RegisterAll wires everything in one pass
// so route registration order stays deterministic.
type Registry struct {
	Engine      *gin.Engine
	API         *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group(apiBase)}
}

// Use appends middleware applied to the whole /api group before any
// module routes are registered.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
