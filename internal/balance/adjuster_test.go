package balance_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/flowy/internal/asset"
	"github.com/MrJamesThe3rd/flowy/internal/balance"
	"github.com/MrJamesThe3rd/flowy/internal/currency"
	"github.com/MrJamesThe3rd/flowy/internal/debt"
	"github.com/MrJamesThe3rd/flowy/internal/flow"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// eurSnapshot has 1 EUR = 1.10 USD.
func eurSnapshot() currency.Snapshot {
	return currency.Snapshot{
		"EUR": dec("1"),
		"USD": dec("1.10"),
	}
}

func checkingAsset(currencyCode string) *asset.Asset {
	return &asset.Asset{
		ID:       uuid.New(),
		Kind:     asset.KindChecking,
		Currency: currencyCode,
	}
}

func stockAsset() *asset.Asset {
	return &asset.Asset{
		ID:       uuid.New(),
		Kind:     asset.KindStock,
		Currency: "USD",
		Ticker:   "VWCE",
	}
}

func TestAdjuster_Apply(t *testing.T) {
	type deps struct {
		assets *balance.MockAssetBalances
	}

	type testCase struct {
		name         string
		asset        *asset.Asset
		flowCurrency string
		delta        decimal.Decimal
		shares       *decimal.Decimal
		setupMock    func(t *testing.T, d deps, as *asset.Asset)
		wantErr      error
	}

	tests := []testCase{
		{
			name:         "ShareBasedTakesSharesVerbatim",
			asset:        stockAsset(),
			flowCurrency: "EUR",
			delta:        dec("1500"),
			shares:       new(dec("10")),
			setupMock: func(t *testing.T, d deps, as *asset.Asset) {
				d.assets.EXPECT().
					AdjustBalance(gomock.Any(), as.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
						// The monetary amount must never leak into a share
						// count, whatever the currencies involved.
						assert.True(t, delta.Equal(dec("10")), "got delta %s", delta)
						return dec("42"), nil
					})
			},
		},
		{
			name:         "ShareBasedWithoutSharesRejected",
			asset:        stockAsset(),
			flowCurrency: "EUR",
			delta:        dec("1500"),
			wantErr:      balance.ErrSharesRequired,
		},
		{
			name:         "ConvertsIntoAssetCurrency",
			asset:        checkingAsset("USD"),
			flowCurrency: "EUR",
			delta:        dec("100"),
			setupMock: func(t *testing.T, d deps, as *asset.Asset) {
				d.assets.EXPECT().
					AdjustBalance(gomock.Any(), as.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
						assert.True(t, delta.Equal(dec("110")), "got delta %s", delta)
						return dec("110"), nil
					})
			},
		},
		{
			name:         "RoundsConvertedAmount",
			asset:        checkingAsset("EUR"),
			flowCurrency: "USD",
			delta:        dec("100"),
			setupMock: func(t *testing.T, d deps, as *asset.Asset) {
				d.assets.EXPECT().
					AdjustBalance(gomock.Any(), as.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
						assert.True(t, delta.Equal(dec("90.91")), "got delta %s", delta)
						return dec("90.91"), nil
					})
			},
		},
		{
			name:         "MissingRateFallsBackToRawAmount",
			asset:        checkingAsset("JPY"),
			flowCurrency: "EUR",
			delta:        dec("-75.50"),
			setupMock: func(t *testing.T, d deps, as *asset.Asset) {
				d.assets.EXPECT().
					AdjustBalance(gomock.Any(), as.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
						assert.True(t, delta.Equal(dec("-75.50")), "got delta %s", delta)
						return dec("0"), nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := deps{assets: balance.NewMockAssetBalances(ctrl)}
			if tt.setupMock != nil {
				tt.setupMock(t, d, tt.asset)
			}

			adjuster := balance.NewAdjuster(d.assets, balance.NewMockDebtBalances(ctrl),
				currency.NewConverter(currency.NewMockRateSource(ctrl)))

			_, err := adjuster.Apply(context.Background(), eurSnapshot(),
				tt.asset, tt.flowCurrency, tt.delta, tt.shares)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAdjuster_PayDebt(t *testing.T) {
	type testCase struct {
		name      string
		debt      *debt.Debt
		amount    decimal.Decimal
		setupMock func(t *testing.T, m *balance.MockDebtBalances, d *debt.Debt)
	}

	tests := []testCase{
		{
			name:   "PaymentConvertedAndNegated",
			debt:   &debt.Debt{ID: uuid.New(), Currency: "EUR", Status: debt.StatusActive},
			amount: dec("110"),
			setupMock: func(t *testing.T, m *balance.MockDebtBalances, d *debt.Debt) {
				m.EXPECT().
					AdjustBalance(gomock.Any(), d.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
						assert.True(t, delta.Equal(dec("-100")), "got delta %s", delta)
						return dec("400"), nil
					})
			},
		},
		{
			name:   "ZeroBalanceMarksPaidOff",
			debt:   &debt.Debt{ID: uuid.New(), Currency: "EUR", Status: debt.StatusActive},
			amount: dec("500"),
			setupMock: func(t *testing.T, m *balance.MockDebtBalances, d *debt.Debt) {
				m.EXPECT().
					AdjustBalance(gomock.Any(), d.ID, gomock.Any()).
					Return(decimal.Decimal{}, nil)
				m.EXPECT().
					MarkPaidOff(gomock.Any(), d.ID, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:   "AlreadyPaidOffNotRestamped",
			debt:   &debt.Debt{ID: uuid.New(), Currency: "EUR", Status: debt.StatusPaidOff},
			amount: dec("10"),
			setupMock: func(t *testing.T, m *balance.MockDebtBalances, d *debt.Debt) {
				m.EXPECT().
					AdjustBalance(gomock.Any(), d.ID, gomock.Any()).
					Return(decimal.Decimal{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			debts := balance.NewMockDebtBalances(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(t, debts, tt.debt)
			}

			adjuster := balance.NewAdjuster(balance.NewMockAssetBalances(ctrl), debts,
				currency.NewConverter(currency.NewMockRateSource(ctrl)))

			_, err := adjuster.PayDebt(context.Background(), eurSnapshot(),
				tt.debt, "EUR", tt.amount)

			assert.NoError(t, err)
		})
	}
}

func TestAdjuster_ApplyFlow(t *testing.T) {
	t.Run("IncomeCreditsDestination", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		to := checkingAsset("EUR")
		assets := balance.NewMockAssetBalances(ctrl)
		assets.EXPECT().
			AdjustBalance(gomock.Any(), to.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
				assert.True(t, delta.Equal(dec("3000")), "got delta %s", delta)
				return dec("3000"), nil
			})

		source := currency.NewMockRateSource(ctrl)
		source.EXPECT().
			Rates(gomock.Any(), gomock.Any()).
			Return(eurSnapshot(), nil)

		adjuster := balance.NewAdjuster(assets, balance.NewMockDebtBalances(ctrl),
			currency.NewConverter(source))

		f := &flow.Flow{ID: uuid.New(), Type: flow.TypeIncome, Currency: "EUR"}
		err := adjuster.ApplyFlow(context.Background(), f, dec("3000"), nil, flow.Refs{To: to})

		require.NoError(t, err)
	})

	t.Run("ExpenseDebitsSource", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		from := checkingAsset("EUR")
		assets := balance.NewMockAssetBalances(ctrl)
		assets.EXPECT().
			AdjustBalance(gomock.Any(), from.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
				assert.True(t, delta.Equal(dec("-59.99")), "got delta %s", delta)
				return dec("940.01"), nil
			})

		source := currency.NewMockRateSource(ctrl)
		source.EXPECT().
			Rates(gomock.Any(), gomock.Any()).
			Return(eurSnapshot(), nil)

		adjuster := balance.NewAdjuster(assets, balance.NewMockDebtBalances(ctrl),
			currency.NewConverter(source))

		f := &flow.Flow{ID: uuid.New(), Type: flow.TypeExpense, Currency: "EUR"}
		err := adjuster.ApplyFlow(context.Background(), f, dec("59.99"), nil, flow.Refs{From: from})

		require.NoError(t, err)
	})

	t.Run("TransferMovesSharesIntoBrokerage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		from := checkingAsset("EUR")
		to := stockAsset()

		assets := balance.NewMockAssetBalances(ctrl)
		assets.EXPECT().
			AdjustBalance(gomock.Any(), from.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
				assert.True(t, delta.Equal(dec("-1500")), "got delta %s", delta)
				return dec("0"), nil
			})
		assets.EXPECT().
			AdjustBalance(gomock.Any(), to.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
				assert.True(t, delta.Equal(dec("10")), "got delta %s", delta)
				return dec("10"), nil
			})

		source := currency.NewMockRateSource(ctrl)
		source.EXPECT().
			Rates(gomock.Any(), gomock.Any()).
			Return(eurSnapshot(), nil)

		adjuster := balance.NewAdjuster(assets, balance.NewMockDebtBalances(ctrl),
			currency.NewConverter(source))

		f := &flow.Flow{
			ID:       uuid.New(),
			Type:     flow.TypeTransfer,
			Currency: "EUR",
			Metadata: flow.Metadata{"shares": "10"},
		}
		err := adjuster.ApplyFlow(context.Background(), f, dec("1500"), new(dec("10")),
			flow.Refs{From: from, To: to})

		require.NoError(t, err)
	})

	t.Run("PayDebtCategoryAlsoDecrementsDebt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		from := checkingAsset("EUR")
		d := &debt.Debt{ID: uuid.New(), Currency: "EUR", Status: debt.StatusActive}

		assets := balance.NewMockAssetBalances(ctrl)
		assets.EXPECT().
			AdjustBalance(gomock.Any(), from.ID, gomock.Any()).
			Return(dec("700"), nil)

		debts := balance.NewMockDebtBalances(ctrl)
		debts.EXPECT().
			AdjustBalance(gomock.Any(), d.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
				assert.True(t, delta.Equal(dec("-300")), "got delta %s", delta)
				return dec("1200"), nil
			})

		source := currency.NewMockRateSource(ctrl)
		source.EXPECT().
			Rates(gomock.Any(), gomock.Any()).
			Return(eurSnapshot(), nil)

		adjuster := balance.NewAdjuster(assets, debts, currency.NewConverter(source))

		f := &flow.Flow{
			ID:       uuid.New(),
			Type:     flow.TypeExpense,
			Currency: "EUR",
			Category: flow.CategoryPayDebt,
		}
		err := adjuster.ApplyFlow(context.Background(), f, dec("300"), nil,
			flow.Refs{From: from, Debt: d})

		require.NoError(t, err)
	})

	t.Run("RateFetchFailureProceedsUnconverted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		to := checkingAsset("USD")
		assets := balance.NewMockAssetBalances(ctrl)
		assets.EXPECT().
			AdjustBalance(gomock.Any(), to.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
				assert.True(t, delta.Equal(dec("50")), "got delta %s", delta)
				return dec("50"), nil
			})

		source := currency.NewMockRateSource(ctrl)
		source.EXPECT().
			Rates(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("provider timeout"))

		adjuster := balance.NewAdjuster(assets, balance.NewMockDebtBalances(ctrl),
			currency.NewConverter(source))

		f := &flow.Flow{ID: uuid.New(), Type: flow.TypeIncome, Currency: "EUR"}
		err := adjuster.ApplyFlow(context.Background(), f, dec("50"), nil, flow.Refs{To: to})

		require.NoError(t, err)
	})
}

// countingBalances serializes increments the way the SQL store's atomic
// UPDATE does.
type countingBalances struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

func (c *countingBalances) AdjustBalance(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.balance = c.balance.Add(delta)

	return c.balance, nil
}

func (c *countingBalances) MarkPaidOff(context.Context, uuid.UUID, time.Time) error {
	return nil
}

func TestAdjuster_ApplyFlowConcurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := &countingBalances{}
	adjuster := balance.NewAdjuster(store, balance.NewMockDebtBalances(ctrl),
		currency.NewConverter(currency.NewMockRateSource(ctrl)))

	to := checkingAsset("EUR")

	const workers = 25

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			f := &flow.Flow{ID: uuid.New(), Type: flow.TypeIncome, Currency: "EUR"}
			_, err := adjuster.Apply(context.Background(), currency.Snapshot{},
				to, f.Currency, dec("10"), nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, store.balance.Equal(dec("250")),
		"no increment may be lost, got %s", store.balance)
}
