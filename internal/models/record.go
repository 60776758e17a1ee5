// Package models defines the data types flowing through the statement
// pipeline: the raw input table, the canonical per-row record, rejected rows
// and per-customer summaries.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTable holds an input table exactly as read: original header spellings
// (trimmed) and string-typed cells. It is immutable once read and is retained
// for the raw-detail output artifacts.
type RawTable struct {
	Source  string
	Headers []string
	Rows    [][]string

	index map[string]int
}

// NewRawTable builds a RawTable and its header index.
func NewRawTable(source string, headers []string, rows [][]string) *RawTable {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}
	return &RawTable{Source: source, Headers: headers, Rows: rows, index: idx}
}

// HasColumn reports whether the table carries the given header.
func (t *RawTable) HasColumn(header string) bool {
	_, ok := t.index[header]
	return ok
}

// Cell returns the value at (row, header), or "" when the header is unknown
// or the row is ragged.
func (t *RawTable) Cell(row int, header string) string {
	i, ok := t.index[header]
	if !ok || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// Len returns the number of data rows.
func (t *RawTable) Len() int {
	return len(t.Rows)
}

// CanonicalRecord is the normalized working unit for one input row.
// Invariants after derivation:
//   - 0 <= DaysPastDue <= InvoiceAgeDays
//   - Bucket is always one of the canonical labels
//   - text fields are trimmed and never carry a "nan"-style sentinel
type CanonicalRecord struct {
	Customer string
	DocType  string
	DocNum   string
	PO       string
	Terms    string

	// InvoiceDate and DueDate use the zero time for "no date".
	InvoiceDate time.Time
	DueDate     time.Time

	// Amount is valid only when HasAmount is true; HasAmount=false is the
	// not-a-number sentinel from an unparsable or missing balance cell.
	Amount    decimal.Decimal
	HasAmount bool

	DaysPastDue    int
	InvoiceAgeDays int
	Bucket         Bucket
	IsOverdue      bool

	// RawIndex links back to the RawTable row this record came from.
	RawIndex int
}

// RejectedRecord is a canonical record that failed admission, tagged with the
// first failing rule name. Rejected rows are reported, never aggregated.
type RejectedRecord struct {
	Record CanonicalRecord
	Reason string
}
