package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 3, NightsBetween(day("2026-07-01"), day("2026-07-04")))
	assert.Equal(t, 0, NightsBetween(day("2026-07-04"), day("2026-07-04")))
	assert.Equal(t, 0, NightsBetween(day("2026-07-05"), day("2026-07-04")))
	assert.Equal(t, 1, NightsBetween(day("2026-07-01").Add(15*time.Hour), day("2026-07-02").Add(10*time.Hour)))
}

func TestEachDay(t *testing.T) {
	days := EachDay(day("2026-12-30"), day("2027-01-02"))

	assert.Len(t, days, 4)
	assert.Equal(t, day("2026-12-30"), days[0])
	assert.Equal(t, day("2027-01-02"), days[3])
	assert.Nil(t, EachDay(day("2027-01-02"), day("2026-12-30")))
}

func TestNightsBetween_CountsCalendarDaysOverLongSpans(t *testing.T) {
	assert.Equal(t, 3652058, NightsBetween(day("0001-01-01"), day("9999-12-31")))
	assert.Equal(t, 366, NightsBetween(day("2028-01-01"), day("2029-01-01")))
	assert.Equal(t, 1, NightsBetween(day("1969-12-31"), day("1970-01-01")))
}

func TestParseStay(t *testing.T) {
	start, end, err := ParseStay("2026-07-01", "2026-07-04")
	require.NoError(t, err)
	assert.Equal(t, day("2026-07-01"), start)
	assert.Equal(t, day("2026-07-04"), end)

	_, _, err = ParseStay("2026-01-01", "2027-01-01")
	assert.NoError(t, err, "exactly the longest stay")

	for _, tc := range [][2]string{
		{"2026-07-04", "2026-07-04"},
		{"2026-07-05", "2026-07-04"},
		{"2026-01-01", "2027-01-02"},
		{"0001-01-01", "9999-12-31"},
		{"1999-12-30", "2000-01-02"},
		{"2100-12-30", "2101-01-02"},
		{"2026-07-01", "soon"},
	} {
		_, _, err := ParseStay(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrInvalidDateRange, "%s..%s", tc[0], tc[1])
	}
}

func TestFormatRFC3339(t *testing.T) {
	assert.Equal(t, "", FormatRFC3339(time.Time{}))
	assert.Equal(t, "2026-07-01T00:00:00Z", FormatRFC3339(day("2026-07-01")))
	assert.True(t, FromUnixSeconds(0).IsZero())
}
