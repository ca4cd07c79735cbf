package birthday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompute_SameMonthMiddle(t *testing.T) {
	t.Parallel()

	w := Compute(date(2025, time.June, 10))

	require.True(t, w.SameMonth)
	require.Equal(t, "06", w.Month)
	require.Equal(t, []string{"10", "11", "12", "13", "14", "15", "16"}, w.Days)
	require.Empty(t, w.Dates)
}

func TestCompute_SameMonthPadsSingleDigits(t *testing.T) {
	t.Parallel()

	w := Compute(date(2025, time.March, 1))

	require.True(t, w.SameMonth)
	require.Equal(t, "03", w.Month)
	require.Equal(t, []string{"01", "02", "03", "04", "05", "06", "07"}, w.Days)
}

func TestCompute_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	// Day 21 is the last day handled by the same-month path; day 22 of the
	// same month switches to per-offset dates even when no rollover occurs.
	w21 := Compute(date(2025, time.July, 21))
	require.True(t, w21.SameMonth)
	require.Equal(t, []string{"21", "22", "23", "24", "25", "26", "27"}, w21.Days)

	w22 := Compute(date(2025, time.July, 22))
	require.False(t, w22.SameMonth)
	require.Equal(t, []MonthDay{
		{Month: 7, Day: 22}, {Month: 7, Day: 23}, {Month: 7, Day: 24},
		{Month: 7, Day: 25}, {Month: 7, Day: 26}, {Month: 7, Day: 27},
		{Month: 7, Day: 28},
	}, w22.Dates)
}

func TestCompute_MonthRollover(t *testing.T) {
	t.Parallel()

	// Day 28 of a 30-day month: three days remain in April, the other four
	// offsets land on May 1 through May 4.
	w := Compute(date(2025, time.April, 28))

	require.False(t, w.SameMonth)
	require.Equal(t, []MonthDay{
		{Month: 4, Day: 28}, {Month: 4, Day: 29}, {Month: 4, Day: 30},
		{Month: 5, Day: 1}, {Month: 5, Day: 2}, {Month: 5, Day: 3},
		{Month: 5, Day: 4},
	}, w.Dates)
}

func TestCompute_YearRollover(t *testing.T) {
	t.Parallel()

	w := Compute(date(2025, time.December, 29))

	require.False(t, w.SameMonth)
	require.Equal(t, []MonthDay{
		{Month: 12, Day: 29}, {Month: 12, Day: 30}, {Month: 12, Day: 31},
		{Month: 1, Day: 1}, {Month: 1, Day: 2}, {Month: 1, Day: 3},
		{Month: 1, Day: 4},
	}, w.Dates)
}

func TestCompute_FebruaryNonLeap(t *testing.T) {
	t.Parallel()

	// 2025 is not a leap year: the window jumps from Feb 28 to Mar 1 and a
	// Feb 29 birthday cannot match.
	w := Compute(date(2025, time.February, 26))

	require.Equal(t, []MonthDay{
		{Month: 2, Day: 26}, {Month: 2, Day: 27}, {Month: 2, Day: 28},
		{Month: 3, Day: 1}, {Month: 3, Day: 2}, {Month: 3, Day: 3},
		{Month: 3, Day: 4},
	}, w.Dates)
	require.NotContains(t, w.Dates, MonthDay{Month: 2, Day: 29})
}

func TestCompute_FebruaryLeap(t *testing.T) {
	t.Parallel()

	w := Compute(date(2024, time.February, 26))

	require.Contains(t, w.Dates, MonthDay{Month: 2, Day: 29})
	require.Equal(t, MonthDay{Month: 3, Day: 3}, w.Dates[len(w.Dates)-1])
}
