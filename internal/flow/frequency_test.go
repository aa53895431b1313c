package flow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/flowy/internal/flow"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFrequency_Next(t *testing.T) {
	type testCase struct {
		name string
		freq flow.Frequency
		from time.Time
		want time.Time
	}

	tests := []testCase{
		{
			name: "Weekly",
			freq: flow.FrequencyWeekly,
			from: date(2024, time.March, 4),
			want: date(2024, time.March, 11),
		},
		{
			name: "Biweekly",
			freq: flow.FrequencyBiweekly,
			from: date(2024, time.March, 4),
			want: date(2024, time.March, 18),
		},
		{
			name: "Monthly",
			freq: flow.FrequencyMonthly,
			from: date(2024, time.March, 15),
			want: date(2024, time.April, 15),
		},
		{
			name: "MonthlyClampsToLeapFebruary",
			freq: flow.FrequencyMonthly,
			from: date(2024, time.January, 31),
			want: date(2024, time.February, 29),
		},
		{
			name: "MonthlyClampsToFebruary",
			freq: flow.FrequencyMonthly,
			from: date(2023, time.January, 31),
			want: date(2023, time.February, 28),
		},
		{
			name: "MonthlyClampsThirtyOneToThirty",
			freq: flow.FrequencyMonthly,
			from: date(2024, time.March, 31),
			want: date(2024, time.April, 30),
		},
		{
			name: "Quarterly",
			freq: flow.FrequencyQuarterly,
			from: date(2024, time.January, 15),
			want: date(2024, time.April, 15),
		},
		{
			name: "QuarterlyClampsAcrossYear",
			freq: flow.FrequencyQuarterly,
			from: date(2023, time.November, 30),
			want: date(2024, time.February, 29),
		},
		{
			name: "Yearly",
			freq: flow.FrequencyYearly,
			from: date(2024, time.June, 1),
			want: date(2025, time.June, 1),
		},
		{
			name: "YearlyClampsLeapDay",
			freq: flow.FrequencyYearly,
			from: date(2024, time.February, 29),
			want: date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.freq.Next(tt.from)

			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestFrequency_NextAlwaysAdvances(t *testing.T) {
	frequencies := []flow.Frequency{
		flow.FrequencyWeekly,
		flow.FrequencyBiweekly,
		flow.FrequencyMonthly,
		flow.FrequencyQuarterly,
		flow.FrequencyYearly,
	}

	// Walk a year of start dates, including every month-end.
	start := date(2024, time.January, 1)
	for d := start; d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		for _, freq := range frequencies {
			next := freq.Next(d)

			assert.True(t, next.After(d),
				"%s from %s must be strictly later, got %s", freq, d, next)
		}
	}
}

func TestFrequency_Valid(t *testing.T) {
	assert.True(t, flow.FrequencyMonthly.Valid())
	assert.False(t, flow.Frequency("fortnightly").Valid())
	assert.False(t, flow.Frequency("").Valid())
}
