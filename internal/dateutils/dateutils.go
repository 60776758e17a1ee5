// Package dateutils provides tolerant date parsing and day-count math for
// accounts-receivable exports. QuickBooks-style US formats are tried first.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date layout constants
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutUS       = "01/02/2006"
	DateLayoutUSShort  = "1/2/2006"
	DateLayoutUSDashed = "01-02-2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats lists the layouts tried, in order, when parsing a date cell.
// Order matters for ambiguous day/month strings: AR exports in this lineage
// are US-formatted, so US layouts come before European ones.
var CommonFormats = []string{
	DateLayoutUS,
	DateLayoutUSShort,
	DateLayoutISO,
	DateLayoutUSDashed,
	DateLayoutFull,
	"02.01.2006",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	"02 Jan 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// CleanDateString trims and collapses whitespace in a raw date cell.
func CleanDateString(dateStr string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate attempts to parse a date string using the common layouts.
// An empty string is not an error; it returns the zero time.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, nil
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time as YYYY-MM-DD; the zero time formats as "".
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

// Truncate drops the time-of-day component, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from `from` to `to`.
// Negative when `to` precedes `from`.
func DaysBetween(from, to time.Time) int {
	return int(Truncate(to).Sub(Truncate(from)).Hours() / 24)
}

// CompareDates compares two calendar dates ignoring time of day, returning
// -1, 0 or 1.
func CompareDates(date1, date2 time.Time) int {
	d1, d2 := Truncate(date1), Truncate(date2)
	switch {
	case d1.Before(d2):
		return -1
	case d1.After(d2):
		return 1
	default:
		return 0
	}
}
