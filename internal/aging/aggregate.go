package aging

import (
	"fmt"
	"sort"
	"time"

	"netc/ar-statements/internal/currencyutils"
	"netc/ar-statements/internal/dateutils"
	"netc/ar-statements/internal/models"

	"github.com/shopspring/decimal"
)

// Aggregate groups admitted records by exact trimmed customer name and
// computes one CustomerSummary per customer plus the grand total. Summaries
// come back ordered by total due descending, ties broken by customer name
// ascending.
func Aggregate(records []models.CanonicalRecord) ([]*models.CustomerSummary, decimal.Decimal) {
	byCustomer := make(map[string]*models.CustomerSummary)

	for _, rec := range records {
		s, ok := byCustomer[rec.Customer]
		if !ok {
			s = models.NewCustomerSummary(rec.Customer)
			byCustomer[rec.Customer] = s
		}

		s.TotalDue = s.TotalDue.Add(rec.Amount)
		s.BucketTotals[rec.Bucket] = s.BucketTotals[rec.Bucket].Add(rec.Amount)
		s.InvoiceCount++

		if rec.IsOverdue {
			s.OverdueTotal = s.OverdueTotal.Add(rec.Amount)
			s.OverdueCount++
			if rec.DaysPastDue > s.OldestDaysPastDue {
				s.OldestDaysPastDue = rec.DaysPastDue
			}
		}
	}

	grandTotal := decimal.Zero
	summaries := make([]*models.CustomerSummary, 0, len(byCustomer))
	for _, s := range byCustomer {
		finishSummary(s, records)
		grandTotal = grandTotal.Add(s.TotalDue)
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].TotalDue.Equal(summaries[j].TotalDue) {
			return summaries[i].TotalDue.GreaterThan(summaries[j].TotalDue)
		}
		return summaries[i].Customer < summaries[j].Customer
	})

	return summaries, grandTotal
}

// finishSummary computes the overdue-only derived metrics for one customer.
func finishSummary(s *models.CustomerSummary, records []models.CanonicalRecord) {
	totalDPD := 0
	var largest *models.CanonicalRecord

	for i := range records {
		rec := &records[i]
		if rec.Customer != s.Customer || !rec.IsOverdue {
			continue
		}
		totalDPD += rec.DaysPastDue
		if largest == nil || rec.Amount.GreaterThan(largest.Amount) {
			largest = rec
		}
	}

	if s.OverdueCount > 0 {
		// Truncated integer average, matching the statement KPI display.
		s.AvgDaysPastDue = totalDPD / s.OverdueCount
	}
	if largest != nil {
		s.LargestOverdueRef = fmt.Sprintf("%s (%s)", largest.DocNum, currencyutils.FormatUSD(largest.Amount))
	}
}

// SortForStatement orders a customer's records for the detail view: overdue
// rows first, then ascending due date, invoice date and document number.
// Missing dates sort after real ones.
func SortForStatement(records []models.CanonicalRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := &records[i], &records[j]
		if a.IsOverdue != b.IsOverdue {
			return a.IsOverdue
		}
		if c := compareDatesMissingLast(a.DueDate, b.DueDate); c != 0 {
			return c < 0
		}
		if c := compareDatesMissingLast(a.InvoiceDate, b.InvoiceDate); c != 0 {
			return c < 0
		}
		return a.DocNum < b.DocNum
	})
}

func compareDatesMissingLast(a, b time.Time) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return dateutils.CompareDates(a, b)
}
