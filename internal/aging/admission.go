package aging

import (
	"strings"

	"netc/ar-statements/internal/models"

	"github.com/shopspring/decimal"
)

// amountEpsilon: balances at or below this magnitude are treated as zero.
var amountEpsilon = decimal.New(1, -6)

// AdmissionRule is one named pass/fail predicate over a normalized row.
type AdmissionRule struct {
	Name  string
	Fails func(r *models.CanonicalRecord) bool
}

// AdmissionRules run in fixed order and the first failing rule names the
// rejection. The order is a data-quality triage order for the rejects
// report, not a severity ranking.
var AdmissionRules = []AdmissionRule{
	{
		Name: "blank_customer",
		Fails: func(r *models.CanonicalRecord) bool {
			return r.Customer == ""
		},
	},
	{
		Name: "blank_type",
		Fails: func(r *models.CanonicalRecord) bool {
			return r.DocType == ""
		},
	},
	{
		Name: "non_invoice_or_credit",
		Fails: func(r *models.CanonicalRecord) bool {
			t := strings.ToLower(r.DocType)
			return !strings.Contains(t, "invoice") && !strings.Contains(t, "credit")
		},
	},
	{
		Name: "no_num_and_no_dates",
		Fails: func(r *models.CanonicalRecord) bool {
			return r.DocNum == "" && r.InvoiceDate.IsZero() && r.DueDate.IsZero()
		},
	},
	{
		Name: "zero_or_nan_amount",
		Fails: func(r *models.CanonicalRecord) bool {
			return !r.HasAmount || r.Amount.Abs().LessThanOrEqual(amountEpsilon)
		},
	},
}

// Admit classifies each record as admitted or rejected, recording the first
// failing rule name on rejects. Rejected rows flow to the side report; the
// run continues with the admitted set.
func Admit(records []models.CanonicalRecord) ([]models.CanonicalRecord, []models.RejectedRecord) {
	var admitted []models.CanonicalRecord
	var rejected []models.RejectedRecord

	for _, rec := range records {
		reason := ""
		for _, rule := range AdmissionRules {
			if rule.Fails(&rec) {
				reason = rule.Name
				break
			}
		}
		if reason != "" {
			rejected = append(rejected, models.RejectedRecord{Record: rec, Reason: reason})
			continue
		}
		admitted = append(admitted, rec)
	}

	return admitted, rejected
}
