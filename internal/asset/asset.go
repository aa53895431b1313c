package asset

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/flowy/internal/scope"
)

var ErrNotFound = errors.New("asset not found")

// Kind classifies an asset and decides the unit of its balance.
type Kind string

const (
	KindChecking Kind = "checking"
	KindSavings  Kind = "savings"
	KindStock    Kind = "stock"
	KindETF      Kind = "etf"
	KindCrypto   Kind = "crypto"
	KindProperty Kind = "property"
	KindOther    Kind = "other"
)

// ShareBased reports whether the asset's balance is a share/unit count
// rather than a currency amount.
func (k Kind) ShareBased() bool {
	switch k {
	case KindStock, KindETF, KindCrypto:
		return true
	}

	return false
}

// Asset is an owned resource. For share-based kinds Balance is a unit
// count; otherwise it is a currency amount denominated in Currency.
type Asset struct {
	ID        uuid.UUID
	Owner     scope.Scope
	Name      string
	Kind      Kind
	Balance   decimal.Decimal
	Currency  string
	Ticker    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
