// Package report writes the run's control files: the rejected-rows side CSV,
// the clean-detail CSV and the send_statements summary CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"netc/ar-statements/internal/common"
	"netc/ar-statements/internal/currencyutils"
	"netc/ar-statements/internal/dateutils"
	"netc/ar-statements/internal/logging"
	"netc/ar-statements/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// CleanDetailRow is one normalized row in the clean-detail artifact.
type CleanDetailRow struct {
	Customer       string `csv:"customer"`
	DocType        string `csv:"type"`
	DocNum         string `csv:"num"`
	PO             string `csv:"po"`
	Terms          string `csv:"terms"`
	InvoiceDate    string `csv:"invoice_date"`
	DueDate        string `csv:"due_date"`
	Amount         string `csv:"amount"`
	DaysPastDue    int    `csv:"days_past_due"`
	Bucket         string `csv:"bucket"`
	IsOverdue      bool   `csv:"is_overdue"`
	InvoiceAgeDays int    `csv:"invoice_age_days"`
}

// SummaryRow is one customer line in send_statements.csv, ordered like the
// index: total due descending, customer ascending.
type SummaryRow struct {
	Customer   string `csv:"Customer"`
	AsOf       string `csv:"As Of"`
	Statement  string `csv:"Statement"`
	Current    string `csv:"Current"`
	Days1To30  string `csv:"1-30"`
	Days31To60 string `csv:"31-60"`
	Days61To90 string `csv:"61-90"`
	Days90Plus string `csv:"90+"`
	TotalDue   string `csv:"Total Due"`
}

// NewCleanDetailRow converts a canonical record into its CSV row view.
func NewCleanDetailRow(rec *models.CanonicalRecord) CleanDetailRow {
	return CleanDetailRow{
		Customer:       rec.Customer,
		DocType:        rec.DocType,
		DocNum:         rec.DocNum,
		PO:             rec.PO,
		Terms:          rec.Terms,
		InvoiceDate:    dateutils.ToISODate(rec.InvoiceDate),
		DueDate:        dateutils.ToISODate(rec.DueDate),
		Amount:         rec.Amount.StringFixed(2),
		DaysPastDue:    rec.DaysPastDue,
		Bucket:         rec.Bucket.String(),
		IsOverdue:      rec.IsOverdue,
		InvoiceAgeDays: rec.InvoiceAgeDays,
	}
}

// WriteCleanDetail writes the normalized admitted rows.
func WriteCleanDetail(records []models.CanonicalRecord, filePath string) error {
	rows := make([]CleanDetailRow, 0, len(records))
	for i := range records {
		rows = append(rows, NewCleanDetailRow(&records[i]))
	}
	return common.WriteCSVFile(rows, filePath)
}

// WriteSendStatements writes the per-customer summary control file.
func WriteSendStatements(summaries []*models.CustomerSummary, asOf string, filePath string) error {
	rows := make([]SummaryRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, SummaryRow{
			Customer:   s.Customer,
			AsOf:       asOf,
			Statement:  s.StatementPath,
			Current:    s.BucketTotals[models.BucketCurrent].StringFixed(2),
			Days1To30:  s.BucketTotals[models.Bucket1To30].StringFixed(2),
			Days31To60: s.BucketTotals[models.Bucket31To60].StringFixed(2),
			Days61To90: s.BucketTotals[models.Bucket61To90].StringFixed(2),
			Days90Plus: s.BucketTotals[models.Bucket90Plus].StringFixed(2),
			TotalDue:   s.TotalDue.StringFixed(2),
		})
	}
	return common.WriteCSVFile(rows, filePath)
}

// WriteRejectedRows writes the rejected rows exactly as they appeared in the
// input, with a reject_reason column appended. The raw header set varies per
// input, so this writes positionally instead of through struct tags.
func WriteRejectedRows(table *models.RawTable, rejected []models.RejectedRecord, filePath string) error {
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldRejected, Value: len(rejected)},
	).Info("Writing rejected rows report")

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating rejects file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(append(append([]string{}, table.Headers...), "reject_reason")); err != nil {
		return fmt.Errorf("error writing rejects header: %w", err)
	}
	for _, rej := range rejected {
		row := make([]string, 0, len(table.Headers)+1)
		for _, h := range table.Headers {
			row = append(row, table.Cell(rej.Record.RawIndex, h))
		}
		row = append(row, rej.Reason)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("error writing rejected row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// IndexEntry is one line of the index collaborator output: customer, total
// due and the statement path, pre-formatted for display.
type IndexEntry struct {
	Customer    string
	RelPath     string
	TotalDueFmt string
}

// IndexEntries converts ordered summaries into index entries with statement
// paths relative to the output root.
func IndexEntries(summaries []*models.CustomerSummary, outRoot string) []IndexEntry {
	entries := make([]IndexEntry, 0, len(summaries))
	for _, s := range summaries {
		rel, err := filepath.Rel(outRoot, s.StatementPath)
		if err != nil {
			rel = s.StatementPath
		}
		entries = append(entries, IndexEntry{
			Customer:    s.Customer,
			RelPath:     filepath.ToSlash(rel),
			TotalDueFmt: currencyutils.FormatUSD(s.TotalDue),
		})
	}
	return entries
}
