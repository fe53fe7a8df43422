package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/application"
	"github.com/jcgarcia/fintrack/pkg/response"
)

type DashboardHandler struct {
	Balance  *application.BalanceService
	Profiles *application.ProfileService
	Logger   *logrus.Logger
}

func NewDashboardHandler(balance *application.BalanceService, profiles *application.ProfileService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Balance: balance, Profiles: profiles, Logger: logger}
}

// Summary returns the user's global totals plus per-profile rows. Totals
// come from the short-lived Redis cache when available.
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := c.GetInt64("userID")

	sum, err := h.Balance.GetSummary(c.Request.Context(), userID)
	if err != nil {
		failFromService(c, err)
		return
	}
	profiles, err := h.Profiles.List(c.Request.Context(), userID)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"total_income":   sum.TotalIncome.StringFixed(2),
		"total_expenses": sum.TotalExpenses.StringFixed(2),
		"balance":        sum.Balance.StringFixed(2),
		"profiles":       toProfileResponses(profiles),
	}, "dashboard summary", nil)
}
