package flow

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

// Type classifies a flow by the direction money moves.
type Type string

const (
	TypeIncome   Type = "income"
	TypeExpense  Type = "expense"
	TypeTransfer Type = "transfer"
	// TypeOther is used for manual balance corrections and carries no
	// asset-reference constraints.
	TypeOther Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer, TypeOther:
		return true
	}

	return false
}

// CategoryPayDebt tags a flow as a debt payment; the referenced debt's
// balance is decremented when the flow is applied.
const CategoryPayDebt = "pay_debt"

// Flow is a single recorded money movement between external
// sources/sinks and owned assets or debts.
type Flow struct {
	ID                uuid.UUID
	Owner             scope.Scope
	Type              Type
	Amount            decimal.Decimal // always positive
	Currency          string
	FromAssetID       *uuid.UUID
	ToAssetID         *uuid.UUID
	DebtID            *uuid.UUID
	Category          string
	Date              time.Time
	Description       string
	ExpenseCategoryID *uuid.UUID
	ScheduleID        *uuid.UUID // set when generated from a recurring schedule
	Metadata          Metadata
	NeedsReview       bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Metadata is an opaque bag of extra flow attributes. The only key the
// engine interprets is "shares", carried by flows touching share-based
// assets.
type Metadata map[string]any

// Shares extracts the share delta from the metadata, if present.
// Numbers arrive as float64 from JSON and as string from user input;
// both are accepted.
func (m Metadata) Shares() (decimal.Decimal, bool) {
	raw, ok := m["shares"]
	if !ok {
		return decimal.Decimal{}, false
	}

	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, false
		}

		return d, true
	case decimal.Decimal:
		return v, true
	}

	return decimal.Decimal{}, false
}

// Template is the immutable snapshot of flow fields a recurring
// schedule uses to synthesize future flows. Only the date is
// substituted at generation time.
type Template struct {
	Type              Type
	Amount            decimal.Decimal
	Currency          string
	FromAssetID       *uuid.UUID
	ToAssetID         *uuid.UUID
	DebtID            *uuid.UUID
	Category          string
	Description       string
	ExpenseCategoryID *uuid.UUID
	Metadata          Metadata
}
