package aging

import (
	"strconv"
	"strings"
	"time"

	"netc/ar-statements/internal/dateutils"
)

// DayCounts is the derived day arithmetic for one row.
type DayCounts struct {
	PastDue int
	Age     int

	// Computed is true when the past-due value had a real basis (a supplied
	// numeric override or a due date); a bare default of 0 is not computed.
	// The bucket classifier only trusts PastDue when Computed is set.
	Computed bool
}

// parseSuppliedDays reads a days-past-due override cell. Exports sometimes
// carry it float-formatted ("30.0"), so float syntax is accepted and
// truncated.
func parseSuppliedDays(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// DeriveDayCounts computes days-past-due and invoice age relative to asOf.
//
// Past due: supplied numeric override if present, else asOf-due in days, else
// 0. Age: asOf-invoice in days, else 0. Both are clamped to >= 0, and past
// due is clamped to at most the invoice age: a document cannot be overdue
// longer than it has existed. Implausible supplied values are truncated
// silently, not rejected. There are no error conditions.
func DeriveDayCounts(supplied string, invoiceDate, dueDate, asOf time.Time) DayCounts {
	var dc DayCounts

	if n, ok := parseSuppliedDays(supplied); ok {
		dc.PastDue = n
		dc.Computed = true
	} else if !dueDate.IsZero() {
		dc.PastDue = dateutils.DaysBetween(dueDate, asOf)
		dc.Computed = true
	}

	if !invoiceDate.IsZero() {
		dc.Age = dateutils.DaysBetween(invoiceDate, asOf)
	}

	if dc.PastDue < 0 {
		dc.PastDue = 0
	}
	if dc.Age < 0 {
		dc.Age = 0
	}
	if dc.PastDue > dc.Age {
		dc.PastDue = dc.Age
	}

	return dc
}
