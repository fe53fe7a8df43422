package router

import (
	"github.com/jcgarcia/fintrack/internal/application"
	"github.com/jcgarcia/fintrack/internal/container"
	pginfra "github.com/jcgarcia/fintrack/internal/infrastructure/postgres"
	handlers "github.com/jcgarcia/fintrack/internal/interface/http"
	"github.com/jcgarcia/fintrack/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	profileRepo := pginfra.NewProfileRepository(pool)
	ledgerRepo := pginfra.NewLedgerRepository(pool)
	balanceRepo := pginfra.NewBalanceRepository(pool)

	balanceSvc := application.NewBalanceService(balanceRepo, container.GetRedis(), logger)
	profileSvc := application.NewProfileService(profileRepo, balanceSvc, logger)
	ledgerSvc := application.NewLedgerService(ledgerRepo, profileRepo, balanceSvc, logger)
	authSvc := application.NewAuthService(userRepo, container.GetJWT(), container.GetRedis(), logger)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetRecaptcha(), container.GetCookies(), logger)
	userHandler := handlers.NewUserHandler(authSvc, logger)
	profileHandler := handlers.NewProfileHandler(profileSvc, logger)
	dashboardHandler := handlers.NewDashboardHandler(balanceSvc, profileSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewUserModule(userHandler, container.GetJWT()))
	r.Add(modules.NewProfileModule(profileHandler, container.GetJWT()))
	r.Add(modules.NewLedgerModule(ledgerSvc, container.GetJWT(), logger))
	r.Add(modules.NewDashboardModule(dashboardHandler, container.GetJWT()))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
