package flow_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
)

func TestValidateRefs(t *testing.T) {
	from := uuid.New()
	to := uuid.New()

	type testCase struct {
		name    string
		flow    flow.Type
		from    *uuid.UUID
		to      *uuid.UUID
		wantErr bool
	}

	tests := []testCase{
		{
			name: "IncomeWithDestination",
			flow: flow.TypeIncome,
			to:   &to,
		},
		{
			name: "IncomeWithSourceAndDestination",
			flow: flow.TypeIncome,
			from: &from,
			to:   &to,
		},
		{
			name:    "IncomeMissingDestination",
			flow:    flow.TypeIncome,
			wantErr: true,
		},
		{
			name: "ExpenseWithSource",
			flow: flow.TypeExpense,
			from: &from,
		},
		{
			name:    "ExpenseMissingSource",
			flow:    flow.TypeExpense,
			wantErr: true,
		},
		{
			name:    "ExpenseWithDestination",
			flow:    flow.TypeExpense,
			from:    &from,
			to:      &to,
			wantErr: true,
		},
		{
			name: "TransferWithBoth",
			flow: flow.TypeTransfer,
			from: &from,
			to:   &to,
		},
		{
			name:    "TransferMissingDestination",
			flow:    flow.TypeTransfer,
			from:    &from,
			wantErr: true,
		},
		{
			name:    "TransferToItself",
			flow:    flow.TypeTransfer,
			from:    &from,
			to:      &from,
			wantErr: true,
		},
		{
			name: "OtherWithoutRefs",
			flow: flow.TypeOther,
		},
		{
			name: "OtherWithBoth",
			flow: flow.TypeOther,
			from: &from,
			to:   &to,
		},
		{
			name:    "UnknownType",
			flow:    flow.Type("refund"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := flow.ValidateRefs(tt.flow, tt.from, tt.to)

			if tt.wantErr {
				var vErr *flow.ValidationError
				require.ErrorAs(t, err, &vErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestMetadata_Shares(t *testing.T) {
	type testCase struct {
		name   string
		meta   flow.Metadata
		want   decimal.Decimal
		wantOk bool
	}

	tests := []testCase{
		{
			name:   "Float",
			meta:   flow.Metadata{"shares": 2.5},
			want:   decimal.NewFromFloat(2.5),
			wantOk: true,
		},
		{
			name:   "Int",
			meta:   flow.Metadata{"shares": 10},
			want:   decimal.NewFromInt(10),
			wantOk: true,
		},
		{
			name:   "String",
			meta:   flow.Metadata{"shares": "0.125"},
			want:   decimal.RequireFromString("0.125"),
			wantOk: true,
		},
		{
			name: "MalformedString",
			meta: flow.Metadata{"shares": "ten"},
		},
		{
			name: "Absent",
			meta: flow.Metadata{"note": "dividend"},
		},
		{
			name: "NilMetadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.meta.Shares()

			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
			}
		})
	}
}
