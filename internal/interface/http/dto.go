package handlers

import (
	"time"

	"github.com/jcgarcia/fintrack/internal/domain/entity"
)

const dateLayout = "2006-01-02"

type profileResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	PositionOrCompany string    `json:"position_or_company"`
	MaritalStatus     string    `json:"marital_status"`
	Children          int       `json:"children"`
	InitialBalance    string    `json:"initial_balance"`
	Assets            string    `json:"assets"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toProfileResponse(p *entity.Profile) profileResponse {
	return profileResponse{
		ID:                p.ID,
		Name:              p.Name,
		Phone:             p.Phone,
		PositionOrCompany: p.PositionOrCompany,
		MaritalStatus:     p.MaritalStatus,
		Children:          p.Children,
		InitialBalance:    p.InitialBalance.StringFixed(2),
		Assets:            p.Assets.StringFixed(2),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type entryResponse struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEntryResponse(e *entity.Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
		Amount:      e.Amount.StringFixed(2),
		Type:        e.Type,
		CreatedAt:   e.CreatedAt,
	}
}

func toEntryResponses(entries []entity.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResponse(&entries[i]))
	}
	return out
}

func toProfileResponses(profiles []entity.Profile) []profileResponse {
	out := make([]profileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, toProfileResponse(&profiles[i]))
	}
	return out
}
