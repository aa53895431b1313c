package flow

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
)

type flowResponse struct {
	ID                uuid.UUID       `json:"id"`
	Type              flow.Type       `json:"type"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	FromAssetID       *uuid.UUID      `json:"from_asset_id,omitempty"`
	ToAssetID         *uuid.UUID      `json:"to_asset_id,omitempty"`
	DebtID            *uuid.UUID      `json:"debt_id,omitempty"`
	Category          string          `json:"category,omitempty"`
	Date              time.Time       `json:"date"`
	Description       string          `json:"description,omitempty"`
	ExpenseCategoryID *uuid.UUID      `json:"flow_expense_category_id,omitempty"`
	ScheduleID        *uuid.UUID      `json:"schedule_id,omitempty"`
	Metadata          flow.Metadata   `json:"metadata,omitempty"`
	NeedsReview       bool            `json:"needs_review"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(f *flow.Flow) flowResponse {
	return flowResponse{
		ID:                f.ID,
		Type:              f.Type,
		Amount:            f.Amount,
		Currency:          f.Currency,
		FromAssetID:       f.FromAssetID,
		ToAssetID:         f.ToAssetID,
		DebtID:            f.DebtID,
		Category:          f.Category,
		Date:              f.Date,
		Description:       f.Description,
		ExpenseCategoryID: f.ExpenseCategoryID,
		ScheduleID:        f.ScheduleID,
		Metadata:          f.Metadata,
		NeedsReview:       f.NeedsReview,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}

func toResponseList(flows []*flow.Flow) []flowResponse {
	resp := make([]flowResponse, len(flows))
	for i, f := range flows {
		resp[i] = toResponse(f)
	}

	return resp
}
