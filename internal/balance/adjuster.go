package balance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/flowy/internal/asset"
	"github.com/MrJamesThe3rd/flowy/internal/currency"
	"github.com/MrJamesThe3rd/flowy/internal/debt"
	"github.com/MrJamesThe3rd/flowy/internal/flow"
)

// ErrSharesRequired is returned when a flow touches a share-based asset
// without carrying a shares value in its metadata. Adding a
// currency-converted number to a share count would corrupt the balance,
// so the write is rejected instead.
var ErrSharesRequired = errors.New("share-based asset requires a shares value in flow metadata")

//go:generate mockgen -source=adjuster.go -destination=store_mock.go -package=balance

// AssetBalances applies a signed delta to an asset's stored balance.
// Implementations must make the increment atomic at the storage layer
// so concurrent flows touching the same asset cannot lose an update.
type AssetBalances interface {
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
}

// DebtBalances applies a signed delta to a debt's current balance,
// clamped at zero by the implementation, and records payoff.
type DebtBalances interface {
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	MarkPaidOff(ctx context.Context, id uuid.UUID, when time.Time) error
}

// Adjuster mutates asset and debt balances as a side effect of a flow,
// converting between currencies through a per-operation rate snapshot.
type Adjuster struct {
	assets    AssetBalances
	debts     DebtBalances
	converter *currency.Converter
	now       func() time.Time
}

func NewAdjuster(assets AssetBalances, debts DebtBalances, converter *currency.Converter) *Adjuster {
	return &Adjuster{
		assets:    assets,
		debts:     debts,
		converter: converter,
		now:       time.Now,
	}
}

// Apply adjusts a single asset's balance. Share-based assets take the
// shares delta verbatim and skip currency conversion entirely; all
// other assets get delta converted from flowCurrency into the asset's
// own currency, falling back to the raw delta when the snapshot has no
// rate. The final monetary amount is rounded to 2 decimal places.
func (a *Adjuster) Apply(ctx context.Context, snap currency.Snapshot, as *asset.Asset, flowCurrency string, delta decimal.Decimal, shares *decimal.Decimal) (decimal.Decimal, error) {
	if as.Kind.ShareBased() {
		if shares == nil {
			return decimal.Decimal{}, fmt.Errorf("asset %s: %w", as.ID, ErrSharesRequired)
		}

		newBalance, err := a.assets.AdjustBalance(ctx, as.ID, *shares)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("adjusting shares of asset %s: %w", as.ID, err)
		}

		return newBalance, nil
	}

	converted, ok := snap.Convert(delta, flowCurrency, as.Currency)
	if !ok {
		// No rate available: proceed with the unconverted amount
		// rather than blocking the write.
		slog.Warn("no exchange rate, using raw amount",
			"from", flowCurrency, "to", as.Currency, "asset", as.ID)

		converted = delta
	}

	newBalance, err := a.assets.AdjustBalance(ctx, as.ID, converted.Round(2))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("adjusting balance of asset %s: %w", as.ID, err)
	}

	return newBalance, nil
}

// PayDebt decrements a debt's balance by the payment amount converted
// into the debt's currency. The store clamps at zero; a balance that
// reaches zero transitions the debt to paid_off stamped with today.
func (a *Adjuster) PayDebt(ctx context.Context, snap currency.Snapshot, d *debt.Debt, flowCurrency string, amount decimal.Decimal) (decimal.Decimal, error) {
	converted, ok := snap.Convert(amount, flowCurrency, d.Currency)
	if !ok {
		slog.Warn("no exchange rate, using raw amount",
			"from", flowCurrency, "to", d.Currency, "debt", d.ID)

		converted = amount
	}

	newBalance, err := a.debts.AdjustBalance(ctx, d.ID, converted.Round(2).Neg())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("adjusting balance of debt %s: %w", d.ID, err)
	}

	if newBalance.IsZero() && d.Status != debt.StatusPaidOff {
		if err := a.debts.MarkPaidOff(ctx, d.ID, a.now()); err != nil {
			return newBalance, fmt.Errorf("marking debt %s paid off: %w", d.ID, err)
		}
	}

	return newBalance, nil
}

// ApplyFlow runs the balance adjustments a flow implies:
// income credits the destination, expense debits the source, transfer
// does both concurrently, other adjusts whatever it references. A
// pay_debt flow additionally decrements the referenced debt. One rate
// snapshot covers every currency the operation touches.
func (a *Adjuster) ApplyFlow(ctx context.Context, f *flow.Flow, amountDelta decimal.Decimal, sharesDelta *decimal.Decimal, refs flow.Refs) error {
	snap, err := a.snapshotFor(ctx, f, refs)
	if err != nil {
		// Rate fetch failure degrades to raw amounts, it never blocks
		// the adjustment.
		slog.Warn("exchange rate fetch failed, proceeding unconverted", "error", err)

		snap = currency.Snapshot{}
	}

	negShares := negated(sharesDelta)

	switch f.Type {
	case flow.TypeIncome:
		if _, err := a.Apply(ctx, snap, refs.To, f.Currency, amountDelta, sharesDelta); err != nil {
			return err
		}
	case flow.TypeExpense:
		if _, err := a.Apply(ctx, snap, refs.From, f.Currency, amountDelta.Neg(), negShares); err != nil {
			return err
		}
	case flow.TypeTransfer:
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			_, err := a.Apply(gctx, snap, refs.From, f.Currency, amountDelta.Neg(), negShares)
			return err
		})
		g.Go(func() error {
			_, err := a.Apply(gctx, snap, refs.To, f.Currency, amountDelta, sharesDelta)
			return err
		})

		if err := g.Wait(); err != nil {
			return err
		}
	case flow.TypeOther:
		if refs.From != nil {
			if _, err := a.Apply(ctx, snap, refs.From, f.Currency, amountDelta.Neg(), negShares); err != nil {
				return err
			}
		}

		if refs.To != nil {
			if _, err := a.Apply(ctx, snap, refs.To, f.Currency, amountDelta, sharesDelta); err != nil {
				return err
			}
		}
	}

	if f.Category == flow.CategoryPayDebt && refs.Debt != nil {
		if _, err := a.PayDebt(ctx, snap, refs.Debt, f.Currency, amountDelta); err != nil {
			return err
		}
	}

	return nil
}

// snapshotFor fetches one rate snapshot covering the flow currency and
// every currency-denominated asset or debt the flow touches.
func (a *Adjuster) snapshotFor(ctx context.Context, f *flow.Flow, refs flow.Refs) (currency.Snapshot, error) {
	codes := []string{f.Currency}

	for _, as := range []*asset.Asset{refs.From, refs.To} {
		if as != nil && !as.Kind.ShareBased() {
			codes = append(codes, as.Currency)
		}
	}

	if refs.Debt != nil {
		codes = append(codes, refs.Debt.Currency)
	}

	return a.converter.Snapshot(ctx, codes...)
}

func negated(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}

	n := d.Neg()

	return &n
}
