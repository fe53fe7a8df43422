package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/application"
	"github.com/jcgarcia/fintrack/pkg/response"
	"github.com/jcgarcia/fintrack/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type profileRequest struct {
	Name              string `json:"name" binding:"required,min=1,max=100"`
	Phone             string `json:"phone" binding:"omitempty,max=20"`
	PositionOrCompany string `json:"position_or_company" binding:"omitempty,max=100"`
	MaritalStatus     string `json:"marital_status" binding:"omitempty,oneof=single married divorced widowed"`
	Children          int    `json:"children" binding:"gte=0"`
	InitialBalance    string `json:"initial_balance" binding:"required,numeric"`
}

func (r profileRequest) toInput(c *gin.Context) (application.ProfileInput, bool) {
	initial, err := decimal.NewFromString(r.InitialBalance)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", gin.H{"initial_balance": "must be a decimal number"})
		return application.ProfileInput{}, false
	}
	if initial.IsNegative() {
		response.Fail(c, http.StatusBadRequest, "validation failed", gin.H{"initial_balance": "must not be negative"})
		return application.ProfileInput{}, false
	}
	return application.ProfileInput{
		Name:              r.Name,
		Phone:             r.Phone,
		PositionOrCompany: r.PositionOrCompany,
		MaritalStatus:     r.MaritalStatus,
		Children:          r.Children,
		InitialBalance:    initial,
	}, true
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}

// Create adds a profile for the logged-in user. Assets start equal to the
// initial balance.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	in, ok := req.toInput(c)
	if !ok {
		return
	}

	p, err := h.Svc.Create(c.Request.Context(), c.GetInt64("userID"), in)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toProfileResponse(p), "profile created", nil)
}

// List returns every profile owned by the user.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.Svc.List(c.Request.Context(), c.GetInt64("userID"))
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, toProfileResponses(profiles), "profiles", nil)
}

// Show returns one profile with its freshly derived balance alongside the
// cached assets value.
func (h *ProfileHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, balance, err := h.Svc.Get(c.Request.Context(), c.GetInt64("userID"), id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"profile": toProfileResponse(p),
		"balance": balance.StringFixed(2),
	}, "profile", nil)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	in, ok := req.toInput(c)
	if !ok {
		return
	}

	p, err := h.Svc.Update(c.Request.Context(), c.GetInt64("userID"), id, in)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, toProfileResponse(p), "profile updated", nil)
}

// Delete removes the profile together with its ledger rows.
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), c.GetInt64("userID"), id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "profile deleted", nil)
}
