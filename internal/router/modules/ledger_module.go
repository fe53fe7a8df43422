package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/application"
	"github.com/jcgarcia/fintrack/internal/container"
	"github.com/jcgarcia/fintrack/internal/domain/entity"
	handlers "github.com/jcgarcia/fintrack/internal/interface/http"
	"github.com/jcgarcia/fintrack/internal/interface/middleware"
	"github.com/jcgarcia/fintrack/pkg/helpers"
)

// LedgerModule wires the income and expense CRUD routes. Both route sets
// share one service; each gets a handler bound to its kind.

type LedgerModule struct {
	Incomes  *handlers.LedgerHandler
	Expenses *handlers.LedgerHandler
	JWT      *helpers.JWTManager
}

func NewLedgerModule(svc *application.LedgerService, jwt *helpers.JWTManager, logger *logrus.Logger) *LedgerModule {
	return &LedgerModule{
		Incomes:  handlers.NewLedgerHandler(svc, entity.KindIncome, logger),
		Expenses: handlers.NewLedgerHandler(svc, entity.KindExpense, logger),
		JWT:      jwt,
	}
}

func (m *LedgerModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), nil),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/incomes", m.Incomes.List)
		auth.POST("/incomes", m.Incomes.Create)
		auth.GET("/incomes/:id", m.Incomes.Show)
		auth.PUT("/incomes/:id", m.Incomes.Update)
		auth.DELETE("/incomes/:id", m.Incomes.Delete)

		auth.GET("/expenses", m.Expenses.List)
		auth.POST("/expenses", m.Expenses.Create)
		auth.GET("/expenses/:id", m.Expenses.Show)
		auth.PUT("/expenses/:id", m.Expenses.Update)
		auth.DELETE("/expenses/:id", m.Expenses.Delete)
	}
}
