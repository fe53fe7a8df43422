package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/jcgarcia/fintrack/internal/application"
	"github.com/jcgarcia/fintrack/internal/domain/entity"
	"github.com/jcgarcia/fintrack/pkg/response"
	"github.com/jcgarcia/fintrack/pkg/validation"
)

// LedgerHandler serves one ledger kind. The income and expense routes use
// two instances of it over the same service.
type LedgerHandler struct {
	Svc    *application.LedgerService
	Kind   entity.EntryKind
	Logger *logrus.Logger
}

func NewLedgerHandler(svc *application.LedgerService, kind entity.EntryKind, logger *logrus.Logger) *LedgerHandler {
	return &LedgerHandler{Svc: svc, Kind: kind, Logger: logger}
}

type entryRequest struct {
	ProfileID   int64  `json:"profile_id" binding:"required,gt=0"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required,numeric"`
	Type        string `json:"type" binding:"omitempty,max=50"`
}

func (r entryRequest) toInput(c *gin.Context) (application.EntryInput, bool) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", gin.H{"amount": "must be a decimal number"})
		return application.EntryInput{}, false
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", gin.H{"date": "must be a date in YYYY-MM-DD format"})
		return application.EntryInput{}, false
	}
	return application.EntryInput{
		ProfileID:   r.ProfileID,
		Date:        date,
		Description: r.Description,
		Amount:      amount,
		Type:        r.Type,
	}, true
}

// Create records a new entry and resyncs the profile's assets in the same
// transaction.
func (h *LedgerHandler) Create(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	in, ok := req.toInput(c)
	if !ok {
		return
	}

	e, err := h.Svc.Create(c.Request.Context(), c.GetInt64("userID"), h.Kind, in)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toEntryResponse(e), "entry created", nil)
}

func (h *LedgerHandler) List(c *gin.Context) {
	entries, err := h.Svc.List(c.Request.Context(), c.GetInt64("userID"), h.Kind)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponses(entries), "entries", nil)
}

func (h *LedgerHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	e, err := h.Svc.Get(c.Request.Context(), c.GetInt64("userID"), h.Kind, id)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(e), "entry", nil)
}

func (h *LedgerHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "validation failed", validation.ToDetails(err))
		return
	}
	in, ok := req.toInput(c)
	if !ok {
		return
	}

	e, err := h.Svc.Update(c.Request.Context(), c.GetInt64("userID"), h.Kind, id, in)
	if err != nil {
		failFromService(c, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(e), "entry updated", nil)
}

func (h *LedgerHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), c.GetInt64("userID"), h.Kind, id); err != nil {
		failFromService(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "entry deleted", nil)
}
