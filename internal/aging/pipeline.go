package aging

import (
	"time"

	"netc/ar-statements/internal/logging"
	"netc/ar-statements/internal/models"
	"netc/ar-statements/internal/parsererror"

	"github.com/shopspring/decimal"
)

var log = logging.GetLogger()

// SetLogger sets a custom logger for this package
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Options configures one pipeline run.
type Options struct {
	// AsOf is the reference date for all day-count math. The zero value
	// means "today".
	AsOf time.Time

	// AliasFile optionally extends the column-alias table from YAML.
	AliasFile string
}

// Result is everything one run produces for the rendering, workbook and
// report collaborators.
type Result struct {
	Table   *models.RawTable
	Columns ColumnMap
	AsOf    time.Time

	Admitted []models.CanonicalRecord
	Rejected []models.RejectedRecord

	Summaries  []*models.CustomerSummary
	GrandTotal decimal.Decimal
}

// Run executes the full normalization and aggregation pipeline over one raw
// table: resolve columns, normalize each row, derive day counts, classify
// buckets, filter admissions, aggregate per customer.
//
// Only two conditions are fatal: required columns missing from the header
// (before any row processing) and zero admitted rows (after filtering).
// Everything else degrades into sentinel values or per-row rejection.
func Run(table *models.RawTable, opts Options) (*Result, error) {
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	schema := DefaultSchema()
	if opts.AliasFile != "" {
		if err := schema.ExtendFromYAML(opts.AliasFile); err != nil {
			return nil, err
		}
	}

	cols, err := schema.Resolve(table)
	if err != nil {
		return nil, err
	}
	log.WithFields(
		logging.Field{Key: logging.FieldRows, Value: table.Len()},
		logging.Field{Key: logging.FieldAsOf, Value: asOf.Format("2006-01-02")},
	).Info("Resolved input columns, normalizing rows")

	records := make([]models.CanonicalRecord, 0, table.Len())
	for row := 0; row < table.Len(); row++ {
		rec := NormalizeRow(table, cols, row)

		supplied := ""
		if cols.Has(FieldDaysPastDue) {
			supplied = table.Cell(row, cols.Header(FieldDaysPastDue))
		}
		dc := DeriveDayCounts(supplied, rec.InvoiceDate, rec.DueDate, asOf)
		rec.DaysPastDue = dc.PastDue
		rec.InvoiceAgeDays = dc.Age

		label := ""
		if cols.Has(FieldAging) {
			label = table.Cell(row, cols.Header(FieldAging))
		}
		rec.Bucket, _ = Classify(label, dc)
		rec.IsOverdue = rec.DaysPastDue > 0

		records = append(records, rec)
	}

	admitted, rejected := Admit(records)
	if len(rejected) > 0 {
		log.WithField(logging.FieldRejected, len(rejected)).Warn("Dropped non-detail rows")
	}
	if len(admitted) == 0 {
		return nil, &parsererror.NoBillableRowsError{
			TotalRows:    table.Len(),
			RejectedRows: len(rejected),
		}
	}

	summaries, grandTotal := Aggregate(admitted)
	log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(admitted)},
		logging.Field{Key: "customers", Value: len(summaries)},
	).Info("Pipeline complete")

	return &Result{
		Table:      table,
		Columns:    cols,
		AsOf:       asOf,
		Admitted:   admitted,
		Rejected:   rejected,
		Summaries:  summaries,
		GrandTotal: grandTotal,
	}, nil
}
