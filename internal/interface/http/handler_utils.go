package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jcgarcia/fintrack/internal/application"
	"github.com/jcgarcia/fintrack/internal/interface/middleware"
	"github.com/jcgarcia/fintrack/pkg/response"
)

func clientIP(c *gin.Context) string {
	if ip := c.GetString(middleware.CtxRealIPKey); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// failFromService maps application sentinel errors onto HTTP statuses.
// Ownership violations answer 404 so resource existence never leaks.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrNotOwner),
		errors.Is(err, application.ErrProfileNotFound),
		errors.Is(err, application.ErrEntryNotFound),
		errors.Is(err, application.ErrUserNotFound):
		response.Fail(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, "invalid credentials", nil)
	case errors.Is(err, application.ErrUsernameTaken):
		response.Fail(c, http.StatusConflict, "username already taken", nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Fail(c, http.StatusConflict, "email already in use", nil)
	case errors.Is(err, application.ErrNegativeAmount):
		response.Fail(c, http.StatusBadRequest, "amount must not be negative", nil)
	default:
		response.Fail(c, http.StatusInternalServerError, "internal error", nil)
	}
}
