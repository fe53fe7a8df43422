package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcgarcia/fintrack/internal/container"
	handlers "github.com/jcgarcia/fintrack/internal/interface/http"
	"github.com/jcgarcia/fintrack/internal/interface/middleware"
	"github.com/jcgarcia/fintrack/pkg/helpers"
)

// UserModule wires account routes.
// Protected: GET /api/user, PUT /api/user, PUT /api/user/password

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/user", m.Handler.Me)
		auth.PUT("/user", m.Handler.Update)
		auth.PUT("/user/password", m.Handler.ChangePassword)
	}
}
