package models

import (
	"github.com/shopspring/decimal"
)

// CustomerSummary aggregates all admitted records for one customer.
// It is recomputed from scratch every run.
type CustomerSummary struct {
	Customer string

	TotalDue     decimal.Decimal
	OverdueTotal decimal.Decimal

	// BucketTotals covers every canonical bucket, zero-filled.
	BucketTotals map[Bucket]decimal.Decimal

	InvoiceCount int
	OverdueCount int

	// AvgDaysPastDue and OldestDaysPastDue are computed over overdue rows
	// only; both are 0 when nothing is overdue. The average is truncated,
	// not rounded.
	AvgDaysPastDue    int
	OldestDaysPastDue int

	// LargestOverdueRef is "<doc num> ($amount)" for the largest-amount
	// overdue row, or "N/A" when nothing is overdue.
	LargestOverdueRef string

	// StatementPath is filled in by the renderer once the statement file
	// for this customer has been written.
	StatementPath string
}

// NewCustomerSummary creates a summary with zero-filled bucket totals.
func NewCustomerSummary(customer string) *CustomerSummary {
	totals := make(map[Bucket]decimal.Decimal, len(CanonicalBuckets))
	for _, b := range CanonicalBuckets {
		totals[b] = decimal.Zero
	}
	return &CustomerSummary{
		Customer:          customer,
		TotalDue:          decimal.Zero,
		OverdueTotal:      decimal.Zero,
		BucketTotals:      totals,
		LargestOverdueRef: "N/A",
	}
}
