// Package parsererror defines the typed errors raised by the statement
// pipeline. Only two conditions are fatal to a run: required columns missing
// from the input header, and an input with no billable rows after filtering.
// Cell-level parse failures never surface here; they degrade to sentinel
// values and at worst reject the single row that carried them.
package parsererror

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports canonical fields for which no header alias
// matched. The full observed header set is carried for operator diagnosis.
type MissingColumnsError struct {
	Fields  []string
	Headers []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required column(s) for %s; found columns: [%s]",
		strings.Join(e.Fields, ", "), strings.Join(e.Headers, ", "))
}

// NoBillableRowsError reports that every input row was rejected or the input
// was empty.
type NoBillableRowsError struct {
	TotalRows    int
	RejectedRows int
}

func (e *NoBillableRowsError) Error() string {
	if e.TotalRows == 0 {
		return "no billable rows: input contained no data rows"
	}
	return fmt.Sprintf("no billable rows: all %d rows were rejected during admission filtering", e.TotalRows)
}

// ParseError represents a failure to read or decode an input file.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
