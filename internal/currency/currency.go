package currency

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
)

// Snapshot is a point-in-time view of exchange rates, keyed by ISO 4217
// code. Each rate is expressed as units of that currency per one unit
// of the reference currency, so converting A to B is
// amount / rate[A] * rate[B]. A snapshot is fetched once per logical
// operation and never persisted.
type Snapshot map[string]decimal.Decimal

// Convert converts amount from one currency to another using the
// snapshot. It returns the amount unchanged when both codes are the
// same (case-insensitive), and ok=false when either code is missing
// from the snapshot so the caller can pick a fallback. No rounding is
// applied here; callers round the final monetary result.
func (s Snapshot) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, bool) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return amount, true
	}

	fromRate, ok := s[from]
	if !ok || fromRate.IsZero() {
		return decimal.Decimal{}, false
	}

	toRate, ok := s[to]
	if !ok {
		return decimal.Decimal{}, false
	}

	return amount.Div(fromRate).Mul(toRate), true
}

// Normalize upper-cases a currency code and checks it is a well-formed
// ISO 4217 code.
func Normalize(code string) (string, error) {
	unit, err := xcurrency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	return unit.String(), nil
}

//go:generate mockgen -source=currency.go -destination=source_mock.go -package=currency

// RateSource fetches current exchange rates for a set of currency
// codes, each expressed against the source's reference currency.
type RateSource interface {
	Rates(ctx context.Context, codes []string) (Snapshot, error)
}

// Converter batches rate lookups for the currencies one operation
// touches.
type Converter struct {
	source RateSource
}

func NewConverter(source RateSource) *Converter {
	return &Converter{source: source}
}

// Snapshot fetches rates for the given codes, deduplicated and
// normalized. Unknown codes are skipped rather than failing the fetch;
// a conversion involving them will simply report no rate.
func (c *Converter) Snapshot(ctx context.Context, codes ...string) (Snapshot, error) {
	seen := make(map[string]struct{}, len(codes))
	normalized := make([]string, 0, len(codes))

	for _, code := range codes {
		norm, err := Normalize(code)
		if err != nil {
			continue
		}

		if _, dup := seen[norm]; dup {
			continue
		}

		seen[norm] = struct{}{}
		normalized = append(normalized, norm)
	}

	if len(normalized) == 0 {
		return Snapshot{}, nil
	}

	snap, err := c.source.Rates(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("fetching exchange rates: %w", err)
	}

	return snap, nil
}
