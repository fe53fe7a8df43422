package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/application"
	"github.com/jcgarcia/fintrack/pkg/response"
	"github.com/jcgarcia/fintrack/pkg/validation"
)

type UserHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type updateAccountRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,pwd"`
}

// Me returns the logged-in user's account.
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.GetInt64("userID"))
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}, "account", nil)
}

// Update changes username and email, re-checking uniqueness.
func (h *UserHandler) Update(c *gin.Context) {
	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateAccount(c.Request.Context(), c.GetInt64("userID"), application.UpdateAccountInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}, "account updated", nil)
}

// ChangePassword verifies the current password before storing a new hash.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}

	if err := h.Svc.ChangePassword(c.Request.Context(), c.GetInt64("userID"), req.CurrentPassword, req.NewPassword); err != nil {
		failFromService(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password changed", nil)
}
