package aging

import (
	"strings"
	"time"

	"netc/ar-statements/internal/currencyutils"
	"netc/ar-statements/internal/dateutils"
	"netc/ar-statements/internal/models"
)

// nullTokens are spreadsheet/export sentinels that mean "no value". They are
// coerced to the empty string so downstream text never carries a literal
// "nan".
var nullTokens = map[string]bool{
	"nan":  true,
	"none": true,
	"null": true,
	"n/a":  true,
	"#n/a": true,
}

// CleanString trims a raw text cell and maps null-ish sentinels to "".
func CleanString(s string) string {
	s = strings.TrimSpace(s)
	if nullTokens[strings.ToLower(s)] {
		return ""
	}
	return s
}

// parseDateCell coerces a raw date cell; unparsable or missing yields the
// zero time, never an error.
func parseDateCell(s string) time.Time {
	t, err := dateutils.ParseDate(CleanString(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// NormalizeRow coerces one raw row into a CanonicalRecord: text fields
// trimmed, balance parsed into a decimal (unparsable keeps HasAmount=false),
// dates parsed tolerantly. Day counts and bucket are filled in by the
// deriver and classifier afterwards.
func NormalizeRow(table *models.RawTable, cols ColumnMap, row int) models.CanonicalRecord {
	rec := models.CanonicalRecord{
		Customer: CleanString(table.Cell(row, cols.Header(FieldCustomer))),
		DocType:  CleanString(table.Cell(row, cols.Header(FieldDocType))),
		RawIndex: row,
	}

	if cols.Has(FieldDocNum) {
		rec.DocNum = CleanString(table.Cell(row, cols.Header(FieldDocNum)))
	}
	if cols.Has(FieldPO) {
		rec.PO = CleanString(table.Cell(row, cols.Header(FieldPO)))
	}
	if cols.Has(FieldTerms) {
		rec.Terms = CleanString(table.Cell(row, cols.Header(FieldTerms)))
	}
	if cols.Has(FieldInvoiceDate) {
		rec.InvoiceDate = parseDateCell(table.Cell(row, cols.Header(FieldInvoiceDate)))
	}
	if cols.Has(FieldDueDate) {
		rec.DueDate = parseDateCell(table.Cell(row, cols.Header(FieldDueDate)))
	}

	rec.Amount, rec.HasAmount = currencyutils.ParseAmount(table.Cell(row, cols.Header(FieldOpenBalance)))

	return rec
}
