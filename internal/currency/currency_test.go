package currency_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/flowy/internal/currency"
)

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSnapshot_Convert(t *testing.T) {
	// EUR-referenced snapshot: 1 EUR = 1.10 USD = 0.85 GBP.
	snap := currency.Snapshot{
		"EUR": rate("1"),
		"USD": rate("1.10"),
		"GBP": rate("0.85"),
	}

	type testCase struct {
		name   string
		amount decimal.Decimal
		from   string
		to     string
		want   decimal.Decimal
		wantOk bool
	}

	tests := []testCase{
		{
			name:   "SameCurrency",
			amount: rate("42.50"),
			from:   "EUR",
			to:     "EUR",
			want:   rate("42.50"),
			wantOk: true,
		},
		{
			name:   "SameCurrencyCaseInsensitive",
			amount: rate("42.50"),
			from:   "eur",
			to:     "EUR",
			want:   rate("42.50"),
			wantOk: true,
		},
		{
			name:   "ThroughReference",
			amount: rate("110"),
			from:   "USD",
			to:     "EUR",
			want:   rate("100"),
			wantOk: true,
		},
		{
			name:   "CrossRate",
			amount: rate("110"),
			from:   "USD",
			to:     "GBP",
			want:   rate("85"),
			wantOk: true,
		},
		{
			name:   "MissingSourceRate",
			amount: rate("100"),
			from:   "JPY",
			to:     "EUR",
		},
		{
			name:   "MissingTargetRate",
			amount: rate("100"),
			from:   "EUR",
			to:     "JPY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := snap.Convert(tt.amount, tt.from, tt.to)

			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSnapshot_ConvertZeroRate(t *testing.T) {
	snap := currency.Snapshot{
		"EUR": rate("1"),
		"XXX": decimal.Decimal{},
	}

	_, ok := snap.Convert(rate("10"), "XXX", "EUR")

	assert.False(t, ok)
}

func TestSnapshot_ConvertRoundTrip(t *testing.T) {
	snap := currency.Snapshot{
		"EUR": rate("1"),
		"USD": rate("1.0834"),
		"CHF": rate("0.9612"),
	}

	amount := rate("1234.56")

	there, ok := snap.Convert(amount, "USD", "CHF")
	require.True(t, ok)

	back, ok := snap.Convert(there, "CHF", "USD")
	require.True(t, ok)

	tolerance := rate("0.000001")
	assert.True(t, back.Sub(amount).Abs().LessThan(tolerance),
		"round trip drifted: %s -> %s", amount, back)
}

func TestNormalize(t *testing.T) {
	type testCase struct {
		name    string
		code    string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{name: "Uppercase", code: "EUR", want: "EUR"},
		{name: "Lowercase", code: "usd", want: "USD"},
		{name: "Whitespace", code: " gbp ", want: "GBP"},
		{name: "Empty", code: "", wantErr: true},
		{name: "TooLong", code: "EURO", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := currency.Normalize(tt.code)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_Snapshot(t *testing.T) {
	type testCase struct {
		name      string
		codes     []string
		setupMock func(m *currency.MockRateSource)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:  "DeduplicatesAndNormalizes",
			codes: []string{"eur", "USD", "EUR"},
			setupMock: func(m *currency.MockRateSource) {
				m.EXPECT().
					Rates(gomock.Any(), []string{"EUR", "USD"}).
					Return(currency.Snapshot{"EUR": rate("1"), "USD": rate("1.10")}, nil)
			},
		},
		{
			name:  "SkipsMalformedCodes",
			codes: []string{"EUR", "not-a-code"},
			setupMock: func(m *currency.MockRateSource) {
				m.EXPECT().
					Rates(gomock.Any(), []string{"EUR"}).
					Return(currency.Snapshot{"EUR": rate("1")}, nil)
			},
		},
		{
			name:  "NothingToFetch",
			codes: []string{"bogus"},
		},
		{
			name:  "SourceError",
			codes: []string{"EUR"},
			setupMock: func(m *currency.MockRateSource) {
				m.EXPECT().
					Rates(gomock.Any(), []string{"EUR"}).
					Return(nil, errors.New("upstream down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := currency.NewMockRateSource(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(source)
			}

			converter := currency.NewConverter(source)
			snap, err := converter.Snapshot(context.Background(), tt.codes...)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, snap)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, snap)
		})
	}
}
