package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcgarcia/fintrack/internal/container"
	handlers "github.com/jcgarcia/fintrack/internal/interface/http"
	"github.com/jcgarcia/fintrack/internal/interface/middleware"
	"github.com/jcgarcia/fintrack/pkg/helpers"
)

// DashboardModule wires the summary route.
// Protected: GET /api/dashboard

type DashboardModule struct {
	Handler *handlers.DashboardHandler
	JWT     *helpers.JWTManager
}

func NewDashboardModule(h *handlers.DashboardHandler, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Handler: h, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/dashboard", m.Handler.Summary)
	}
}
