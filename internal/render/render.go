// Package render produces the per-customer statement HTML, the searchable
// index page and the email draft from pipeline output.
package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"netc/ar-statements/internal/aging"
	"netc/ar-statements/internal/currencyutils"
	"netc/ar-statements/internal/dateutils"
	"netc/ar-statements/internal/models"
	"netc/ar-statements/internal/report"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Company is the branding block rendered into every artifact.
type Company struct {
	Name      string
	Email     string
	Phone     string
	Address   string
	RemitTo   string
	PayNowURL string
	LogoSrc   string
}

// Metric is one labeled KPI line on a statement.
type Metric struct {
	Label string
	Value string
}

// Row is the display view of one canonical record.
type Row struct {
	Type        string
	Num         string
	InvoiceDate string
	DueDate     string
	Terms       string
	PO          string
	AmountFmt   string
	Bucket      string
	DaysPastDue int
	RowClass    string
}

// BucketTotal is one line of a statement's aging summary table.
type BucketTotal struct {
	Label     string
	AmountFmt string
}

// StatementData feeds the statement template for one customer.
type StatementData struct {
	Company      Company
	AsOf         string
	Customer     string
	Metrics      []Metric
	Rows         []Row
	TotalDueFmt  string
	BucketTotals []BucketTotal
}

// IndexData feeds the index template.
type IndexData struct {
	Company       Company
	AsOf          string
	Rows          []report.IndexEntry
	GrandTotal    string
	GrandTotalFmt string
}

// EmailData feeds the email draft template.
type EmailData struct {
	Company     Company
	AsOf        string
	Customer    string
	TotalDueFmt string
}

var (
	statementTmpl = htmltemplate.Must(htmltemplate.New("statement").Parse(statementHTML))
	indexTmpl     = htmltemplate.Must(htmltemplate.New("index").Parse(indexHTML))
	emailTmpl     = texttemplate.Must(texttemplate.New("email").Parse(emailTXT))
)

// rowClass colors overdue positive balances red and credits green.
func rowClass(rec *models.CanonicalRecord) string {
	switch {
	case rec.Amount.LessThan(decimal.Zero):
		return "credit"
	case rec.IsOverdue && rec.Amount.GreaterThan(decimal.Zero):
		return "overdue"
	default:
		return ""
	}
}

// BuildStatementData assembles the template data for one customer: KPI
// metrics, ordered detail rows and zero-filled bucket totals. Records are
// sorted overdue-first, then by due date, invoice date and document number.
func BuildStatementData(company Company, summary *models.CustomerSummary, records []models.CanonicalRecord, asOf string) StatementData {
	own := make([]models.CanonicalRecord, 0, len(records))
	for _, rec := range records {
		if rec.Customer == summary.Customer {
			own = append(own, rec)
		}
	}
	aging.SortForStatement(own)

	rows := make([]Row, 0, len(own))
	for i := range own {
		rec := &own[i]
		rows = append(rows, Row{
			Type:        rec.DocType,
			Num:         rec.DocNum,
			InvoiceDate: dateutils.ToISODate(rec.InvoiceDate),
			DueDate:     dateutils.ToISODate(rec.DueDate),
			Terms:       rec.Terms,
			PO:          rec.PO,
			AmountFmt:   currencyutils.FormatUSD(rec.Amount),
			Bucket:      rec.Bucket.String(),
			DaysPastDue: rec.DaysPastDue,
			RowClass:    rowClass(rec),
		})
	}

	bucketTotals := make([]BucketTotal, 0, len(models.CanonicalBuckets))
	for _, b := range models.CanonicalBuckets {
		bucketTotals = append(bucketTotals, BucketTotal{
			Label:     b.String(),
			AmountFmt: currencyutils.FormatUSD(summary.BucketTotals[b]),
		})
	}

	metrics := []Metric{
		{"Invoices", fmt.Sprintf("%d", summary.InvoiceCount)},
		{"Overdue invoices", fmt.Sprintf("%d", summary.OverdueCount)},
		{"Avg days past due", fmt.Sprintf("%d", summary.AvgDaysPastDue)},
		{"Oldest days past due", fmt.Sprintf("%d", summary.OldestDaysPastDue)},
		{"Total due", currencyutils.FormatUSD(summary.TotalDue)},
		{"Overdue total", currencyutils.FormatUSD(summary.OverdueTotal)},
		{"Largest overdue invoice", summary.LargestOverdueRef},
	}

	return StatementData{
		Company:      company,
		AsOf:         asOf,
		Customer:     summary.Customer,
		Metrics:      metrics,
		Rows:         rows,
		TotalDueFmt:  currencyutils.FormatUSD(summary.TotalDue),
		BucketTotals: bucketTotals,
	}
}

// Statement renders a customer statement page.
func Statement(data StatementData) ([]byte, error) {
	var buf bytes.Buffer
	if err := statementTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("error rendering statement: %w", err)
	}
	return buf.Bytes(), nil
}

// Index renders the searchable index page.
func Index(data IndexData) ([]byte, error) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("error rendering index: %w", err)
	}
	return buf.Bytes(), nil
}

// Email renders the plain-text email draft.
func Email(data EmailData) ([]byte, error) {
	var buf bytes.Buffer
	if err := emailTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("error rendering email draft: %w", err)
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// CustomerDirName is the slug directory for one customer under the output
// root.
func CustomerDirName(customer string) string {
	s := slug.Make(customer)
	if s == "" {
		return "unknown"
	}
	return s
}

// StatementFileName keeps one statement per customer per day: the slug of
// the customer's first three words plus the date. Same-day reruns overwrite;
// different days accumulate history.
func StatementFileName(customer string, asOfCompact string) string {
	words := strings.Fields(customer)
	if len(words) > 3 {
		words = words[:3]
	}
	s := slug.Make(strings.Join(words, " "))
	if s == "" {
		s = "unknown"
	}
	return fmt.Sprintf("%s_%s.html", s, asOfCompact)
}
