package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCleanDateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Already clean", "01/15/2026", "01/15/2026"},
		{"Leading and trailing spaces", "  01/15/2026  ", "01/15/2026"},
		{"Internal whitespace collapsed", "Jan   2,  2026", "Jan 2, 2026"},
		{"Tabs and newlines", "\t2026-01-15\n", "2026-01-15"},
		{"Empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanDateString(tc.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		expectErr bool
		expectedY int
		expectedM time.Month
		expectedD int
	}{
		{"US format", "01/15/2026", false, 2026, time.January, 15},
		{"US short format", "1/5/2026", false, 2026, time.January, 5},
		{"ISO format", "2026-01-15", false, 2026, time.January, 15},
		{"US dashed", "01-15-2026", false, 2026, time.January, 15},
		{"Full timestamp", "2026-01-15 10:30:45", false, 2026, time.January, 15},
		{"Month name", "Jan 2, 2026", false, 2026, time.January, 2},
		{"Whitespace around", "  06/30/2026 ", false, 2026, time.June, 30},
		{"Invalid", "not a date", true, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDate(tc.dateStr)

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedY, date.Year())
			assert.Equal(t, tc.expectedM, date.Month())
			assert.Equal(t, tc.expectedD, date.Day())
		})
	}
}

func TestParseDateEmptyIsNotAnError(t *testing.T) {
	date, err := ParseDate("")
	assert.NoError(t, err)
	assert.True(t, date.IsZero())

	date, err = ParseDate("   ")
	assert.NoError(t, err)
	assert.True(t, date.IsZero())
}

func TestParseDateAmbiguousIsUSFirst(t *testing.T) {
	// 03/04/2026 must read as March 4th, not April 3rd.
	date, err := ParseDate("03/04/2026")
	assert.NoError(t, err)
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 4, date.Day())
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2026-06-30", ToISODate(time.Date(2026, time.June, 30, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", ToISODate(time.Time{}))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			"Same day",
			time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.June, 30, 23, 59, 0, 0, time.UTC),
			0,
		},
		{
			"Forward one day",
			time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			1,
		},
		{
			"Backward is negative",
			time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
			-1,
		},
		{
			"Across months",
			time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
			60,
		},
		{
			"Time of day ignored",
			time.Date(2026, time.June, 29, 23, 0, 0, 0, time.UTC),
			time.Date(2026, time.June, 30, 1, 0, 0, 0, time.UTC),
			1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DaysBetween(tc.from, tc.to))
		})
	}
}

func TestCompareDates(t *testing.T) {
	earlier := time.Date(2026, time.June, 29, 18, 0, 0, 0, time.UTC)
	later := time.Date(2026, time.June, 30, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, -1, CompareDates(earlier, later))
	assert.Equal(t, 1, CompareDates(later, earlier))
	assert.Equal(t, 0, CompareDates(later, time.Date(2026, time.June, 30, 23, 0, 0, 0, time.UTC)))
}
