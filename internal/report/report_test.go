package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"netc/ar-statements/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCleanDetailRow(t *testing.T) {
	rec := models.CanonicalRecord{
		Customer:       "Acme Trucking",
		DocType:        "Invoice",
		DocNum:         "INV-1001",
		PO:             "PO-7",
		Terms:          "Net 30",
		InvoiceDate:    time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromFloat(1250.5),
		HasAmount:      true,
		DaysPastDue:    30,
		InvoiceAgeDays: 60,
		Bucket:         models.Bucket1To30,
		IsOverdue:      true,
	}

	row := NewCleanDetailRow(&rec)
	assert.Equal(t, "Acme Trucking", row.Customer)
	assert.Equal(t, "2026-05-01", row.InvoiceDate)
	assert.Equal(t, "2026-05-31", row.DueDate)
	assert.Equal(t, "1250.50", row.Amount)
	assert.Equal(t, 30, row.DaysPastDue)
	assert.Equal(t, "1-30", row.Bucket)
	assert.True(t, row.IsOverdue)
}

func TestNewCleanDetailRowMissingDates(t *testing.T) {
	rec := models.CanonicalRecord{Customer: "Acme", Bucket: models.BucketCurrent}
	row := NewCleanDetailRow(&rec)
	assert.Equal(t, "", row.InvoiceDate)
	assert.Equal(t, "", row.DueDate)
}

func TestWriteCleanDetail(t *testing.T) {
	records := []models.CanonicalRecord{
		{
			Customer:  "Acme",
			DocType:   "Invoice",
			DocNum:    "INV-1",
			Amount:    decimal.NewFromInt(100),
			HasAmount: true,
			Bucket:    models.BucketCurrent,
		},
	}

	path := filepath.Join(t.TempDir(), "Detail_Clean.csv")
	require.NoError(t, WriteCleanDetail(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "customer,type,num,po,terms,invoice_date,due_date,amount,days_past_due,bucket,is_overdue,invoice_age_days", lines[0])
	assert.Contains(t, lines[1], "Acme,Invoice,INV-1")
	assert.Contains(t, lines[1], "100.00")
}

func TestWriteSendStatements(t *testing.T) {
	s := models.NewCustomerSummary("Acme Trucking")
	s.TotalDue = decimal.NewFromFloat(1500)
	s.BucketTotals[models.BucketCurrent] = decimal.NewFromInt(1000)
	s.BucketTotals[models.Bucket1To30] = decimal.NewFromInt(500)
	s.StatementPath = "Customer_Statements/acme-trucking/acme-trucking_20260630.html"

	path := filepath.Join(t.TempDir(), "send_statements.csv")
	require.NoError(t, WriteSendStatements([]*models.CustomerSummary{s}, "2026-06-30", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Customer,As Of,Statement,Current,1-30,31-60,61-90,90+,Total Due", lines[0])

	reader := csv.NewReader(strings.NewReader(lines[1]))
	fields, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, "Acme Trucking", fields[0])
	assert.Equal(t, "2026-06-30", fields[1])
	assert.Equal(t, s.StatementPath, fields[2])
	assert.Equal(t, "1000.00", fields[3])
	assert.Equal(t, "500.00", fields[4])
	assert.Equal(t, "0.00", fields[5])
	assert.Equal(t, "1500.00", fields[8])
}

func TestWriteRejectedRows(t *testing.T) {
	table := models.NewRawTable("export.csv",
		[]string{"Name", "Type", "Open Balance"},
		[][]string{
			{"Acme", "Invoice", "100.00"},
			{"", "Total", "100.00"},
		},
	)
	rejected := []models.RejectedRecord{
		{Record: models.CanonicalRecord{RawIndex: 1}, Reason: "blank_customer"},
	}

	path := filepath.Join(t.TempDir(), "_rejected_rows.csv")
	require.NoError(t, WriteRejectedRows(table, rejected, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Name", "Type", "Open Balance", "reject_reason"}, rows[0])
	assert.Equal(t, []string{"", "Total", "100.00", "blank_customer"}, rows[1])
}

func TestIndexEntries(t *testing.T) {
	outRoot := filepath.Join("out", "Customer_Statements")
	s := models.NewCustomerSummary("Acme")
	s.TotalDue = decimal.NewFromFloat(1234.5)
	s.StatementPath = filepath.Join(outRoot, "acme", "acme_20260630.html")

	entries := IndexEntries([]*models.CustomerSummary{s}, outRoot)
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme", entries[0].Customer)
	assert.Equal(t, "acme/acme_20260630.html", entries[0].RelPath)
	assert.Equal(t, "$1,234.50", entries[0].TotalDueFmt)
}
