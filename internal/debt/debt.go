package debt

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

var ErrNotFound = errors.New("debt not found")

// Status is the lifecycle state of a debt.
type Status string

const (
	StatusActive  Status = "active"
	StatusPaidOff Status = "paid_off"
)

// Debt is an owned liability. CurrentBalance is a currency amount in
// Currency and never goes below zero; reaching zero flips the status to
// paid_off.
type Debt struct {
	ID             uuid.UUID
	Owner          scope.Scope
	Name           string
	CurrentBalance decimal.Decimal
	Currency       string
	MonthlyPayment decimal.Decimal
	Status         Status
	PaidOffDate    *time.Time
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
