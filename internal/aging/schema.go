// Package aging implements the normalization and aging-bucket engine: column
// aliasing, per-cell coercion, day-count derivation, bucket classification,
// row admission and per-customer aggregation. Every stage is a pure function
// of its row plus the fixed as-of date and the static alias/threshold tables.
package aging

import (
	"os"
	"strings"

	"netc/ar-statements/internal/models"
	"netc/ar-statements/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// Field names a canonical semantic column that arbitrary input headers are
// aliased onto.
type Field string

const (
	FieldCustomer    Field = "customer"
	FieldDocType     Field = "type"
	FieldDocNum      Field = "num"
	FieldPO          Field = "po"
	FieldTerms       Field = "terms"
	FieldInvoiceDate Field = "date"
	FieldDueDate     Field = "due_date"
	FieldOpenBalance Field = "open_balance"
	FieldAging       Field = "aging"
	FieldDaysPastDue Field = "days_past_due"
)

// fieldOrder fixes iteration order for resolution and error reporting.
var fieldOrder = []Field{
	FieldCustomer,
	FieldDocType,
	FieldDocNum,
	FieldPO,
	FieldTerms,
	FieldInvoiceDate,
	FieldDueDate,
	FieldOpenBalance,
	FieldAging,
	FieldDaysPastDue,
}

// requiredFields must resolve or the run aborts before any row processing.
var requiredFields = []Field{FieldCustomer, FieldDocType, FieldOpenBalance}

// defaultAliases maps each canonical field to the header spellings seen
// across QuickBooks-style AR exports, in preference order. Matching is exact
// on trimmed headers; no fuzzy matching.
var defaultAliases = map[Field][]string{
	FieldCustomer:    {"Name", "Customer", "Customer Name", "Customer_Name"},
	FieldDocType:     {"Type", "Txn Type", "Txn_Type", "Doc Type", "Doc_Type"},
	FieldDocNum:      {"Num", "No", "Doc Num", "Doc_Num", "Invoice", "Invoice Number", "Invoice_Number"},
	FieldPO:          {"P. O. #", "PO", "P.O.#", "PO Number", "PO_Number", "P_O_Number"},
	FieldTerms:       {"Terms"},
	FieldInvoiceDate: {"Date", "Txn Date", "Txn_Date", "Invoice Date", "Invoice_Date"},
	FieldDueDate:     {"Due Date", "Due_Date", "Due", "DueDt", "Due_Dt"},
	FieldOpenBalance: {"Open Balance", "Open_Balance", "Balance", "Open Amount", "Open_Amount", "Amt Open", "Amt_Open"},
	FieldAging:       {"Aging", "Aging Bucket", "Aging_Bucket", "Aging_Bucket_Calc"},
	FieldDaysPastDue: {"Days Past Due", "Days_Past_Due", "Days Overdue", "Days_Overdue"},
}

// Schema is the column-alias table. It is built once per run and read-only
// afterwards.
type Schema struct {
	aliases map[Field][]string
}

// DefaultSchema returns a Schema carrying the built-in alias table.
func DefaultSchema() *Schema {
	aliases := make(map[Field][]string, len(defaultAliases))
	for f, list := range defaultAliases {
		aliases[f] = append([]string(nil), list...)
	}
	return &Schema{aliases: aliases}
}

// ExtendFromYAML appends extra header spellings from a YAML file mapping
// canonical field names to alias lists. Built-in aliases keep precedence;
// unknown field names are rejected so typos fail loudly.
func (s *Schema) ExtendFromYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &parsererror.ParseError{File: path, Err: err}
	}

	var extra map[string][]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return &parsererror.ParseError{File: path, Err: err}
	}

	for name, list := range extra {
		field := Field(name)
		if _, known := s.aliases[field]; !known {
			return &parsererror.ParseError{
				File: path,
				Err:  &unknownFieldError{Name: name},
			}
		}
		for _, alias := range list {
			alias = strings.TrimSpace(alias)
			if alias != "" {
				s.aliases[field] = append(s.aliases[field], alias)
			}
		}
	}
	return nil
}

type unknownFieldError struct{ Name string }

func (e *unknownFieldError) Error() string {
	return "unknown canonical field: " + e.Name
}

// ColumnMap is the result of resolution: for each canonical field, the input
// header that carries it. Absent fields have no entry.
type ColumnMap map[Field]string

// Has reports whether a field resolved to an input header.
func (m ColumnMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// Header returns the resolved input header for a field, or "".
func (m ColumnMap) Header(f Field) string {
	return m[f]
}

// Resolve maps the table's headers onto canonical fields: for each field, the
// first alias present in the input wins. Required fields that fail to resolve
// abort the run with a MissingColumnsError carrying the observed header set.
func (s *Schema) Resolve(table *models.RawTable) (ColumnMap, error) {
	cols := make(ColumnMap, len(fieldOrder))
	for _, field := range fieldOrder {
		for _, alias := range s.aliases[field] {
			if table.HasColumn(alias) {
				cols[field] = alias
				break
			}
		}
	}

	var missing []string
	for _, field := range requiredFields {
		if !cols.Has(field) {
			missing = append(missing, string(field))
		}
	}
	if len(missing) > 0 {
		return nil, &parsererror.MissingColumnsError{
			Fields:  missing,
			Headers: table.Headers,
		}
	}

	return cols, nil
}
