package flow

import "time"

// Frequency is the cadence of a recurring flow.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}

	return false
}

// Next returns the date one period after d, using calendar arithmetic
// for the month/quarter/year cases. When the anchor day does not exist
// in the target month (Jan 31 + 1 month), the result clamps to the
// last day of the target month instead of rolling over.
func (f Frequency) Next(d time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return d.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return d.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return addMonthsClamped(d, 1)
	case FrequencyQuarterly:
		return addMonthsClamped(d, 3)
	case FrequencyYearly:
		return addMonthsClamped(d, 12)
	}

	return d
}

func addMonthsClamped(d time.Time, months int) time.Time {
	year, month, day := d.Date()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, d.Location())
	if last := daysIn(firstOfTarget); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
