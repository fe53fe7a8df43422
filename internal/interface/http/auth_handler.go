package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/application"
	"github.com/jcgarcia/fintrack/pkg/helpers"
	"github.com/jcgarcia/fintrack/pkg/response"
	"github.com/jcgarcia/fintrack/pkg/validation"
)

type AuthHandler struct {
	Svc       *application.AuthService
	Recaptcha *helpers.Recaptcha
	Cookies   *helpers.Manager
	Logger    *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, rc *helpers.Recaptcha, cookies *helpers.Manager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Recaptcha: rc, Cookies: cookies, Logger: logger}
}

type registerRequest struct {
	Username       string `json:"username" binding:"required,alphanum,min=3,max=32"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,pwd"`
	RecaptchaToken string `json:"recaptcha_token"`
}

type loginRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	RecaptchaToken string `json:"recaptcha_token"`
}

func (h *AuthHandler) verifyCaptcha(c *gin.Context, token string) bool {
	if !h.Recaptcha.Enabled() {
		return true
	}
	ok, err := h.Recaptcha.Verify(c.Request.Context(), token, clientIP(c))
	if err != nil {
		helpers.LogError(h.Logger, "recaptcha verification failed", err, nil)
		response.Fail(c, http.StatusServiceUnavailable, "captcha verification unavailable", nil)
		return false
	}
	if !ok {
		response.Fail(c, http.StatusForbidden, "captcha verification failed", nil)
		return false
	}
	return true
}

// Register creates a new account. Username and email must be unused.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	if !h.verifyCaptcha(c, req.RecaptchaToken) {
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}, "registration successful", nil)
}

// Login authenticates by username and sets the token cookie pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	if !h.verifyCaptcha(c, req.RecaptchaToken) {
		return
	}

	res, pair, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		failFromService(c, err)
		return
	}

	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, res, "login successful", nil)
}

// Refresh rotates the session and reissues both cookies.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Fail(c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}

	pair, _, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		h.Cookies.Clear(c)
		response.Fail(c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}

	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success[any](c, http.StatusOK, nil, "token refreshed", nil)
}

// Logout drops the server-side session and clears cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), c.GetInt64("userID"))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "logged out", nil)
}
