package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcgarcia/fintrack/internal/container"
	handlers "github.com/jcgarcia/fintrack/internal/interface/http"
	"github.com/jcgarcia/fintrack/internal/interface/middleware"
	"github.com/jcgarcia/fintrack/pkg/helpers"
)

// ProfileModule wires the profile CRUD routes, all protected.

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/profiles", m.Handler.List)
		auth.POST("/profiles", m.Handler.Create)
		auth.GET("/profiles/:id", m.Handler.Show)
		auth.PUT("/profiles/:id", m.Handler.Update)
		auth.DELETE("/profiles/:id", m.Handler.Delete)
	}
}
