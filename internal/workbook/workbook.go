// Package workbook writes the Aging_Summary.xlsx control workbook with three
// sheets: the input exactly as read, the normalized detail, and the
// per-customer totals.
package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"netc/ar-statements/internal/aging"
	"netc/ar-statements/internal/dateutils"
	"netc/ar-statements/internal/logging"
	"netc/ar-statements/internal/models"

	"github.com/xuri/excelize/v2"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

const (
	sheetRaw      = "Detail (Raw)"
	sheetClean    = "Detail (Clean)"
	sheetCustomer = "By Customer"

	maxColWidth  = 40
	widthScanCap = 200
)

const (
	fmtMoney = `$#,##0.00`
	fmtInt   = `0`
	fmtDate  = `yyyy-mm-dd`
)

// styles carries the per-type cell styles registered on one workbook.
type styles struct {
	money int
	ints  int
	date  int
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	moneyFmt := fmtMoney
	if s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt}); err != nil {
		return s, err
	}
	intFmt := fmtInt
	if s.ints, err = f.NewStyle(&excelize.Style{CustomNumFmt: &intFmt}); err != nil {
		return s, err
	}
	dateFmt := fmtDate
	if s.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt}); err != nil {
		return s, err
	}
	return s, nil
}

// columnKind picks a number format from a header name, mirroring how the
// statement columns are typed: money for balances/totals, integers for day
// counts, dates for date columns.
func columnKind(header string) string {
	h := strings.ToLower(header)
	switch {
	case strings.Contains(h, "amount"), strings.Contains(h, "balance"), strings.Contains(h, "total"),
		strings.Contains(h, "open"), h == "current", h == "1-30", h == "31-60", h == "61-90", h == "90+":
		return "money"
	case strings.Contains(h, "days"):
		return "int"
	case strings.Contains(h, "date"), h == "due", h == "due_dt":
		return "date"
	default:
		return ""
	}
}

// Write builds Aging_Summary.xlsx at filePath. The run ID is stamped into
// the workbook properties so an emailed copy can be traced to its run.
func Write(result *aging.Result, runID, filePath string) error {
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldRunID, Value: runID},
	).Info("Writing aging summary workbook")

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	st, err := newStyles(f)
	if err != nil {
		return fmt.Errorf("error registering styles: %w", err)
	}

	if err := writeRawSheet(f, st, result.Table); err != nil {
		return err
	}
	if err := writeCleanSheet(f, st, result.Admitted); err != nil {
		return err
	}
	if err := writeCustomerSheet(f, st, result.Summaries, result.AsOf.Format("2006-01-02")); err != nil {
		return err
	}

	// The default sheet comes with the file; the raw sheet replaces it.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("error removing default sheet: %w", err)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      "AR Aging Summary",
		Creator:    "ar-statements",
		Identifier: runID,
	}); err != nil {
		return fmt.Errorf("error setting workbook properties: %w", err)
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}
	return nil
}

// setHeader writes a header row and returns per-column max content width
// trackers seeded with the header lengths.
func setHeader(f *excelize.File, sheet string, headers []string) ([]int, error) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
		widths[i] = len(h)
	}
	return widths, nil
}

// applyWidths sets each column to its widest observed content plus padding,
// capped so one long memo cell cannot blow up the layout.
func applyWidths(f *excelize.File, sheet string, widths []int) error {
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := float64(w + 2)
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

func track(widths []int, col int, value string, row int) {
	if row <= widthScanCap && col < len(widths) && len(value) > widths[col] {
		widths[col] = len(value)
	}
}

// writeRawSheet writes the input exactly as read, coercing likely numeric
// and date columns so Excel shows proper types instead of text.
func writeRawSheet(f *excelize.File, st styles, table *models.RawTable) error {
	if _, err := f.NewSheet(sheetRaw); err != nil {
		return fmt.Errorf("error creating sheet %s: %w", sheetRaw, err)
	}

	widths, err := setHeader(f, sheetRaw, table.Headers)
	if err != nil {
		return err
	}

	for r := 0; r < table.Len(); r++ {
		for c, header := range table.Headers {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			raw := table.Cell(r, header)
			track(widths, c, raw, r+2)

			switch columnKind(header) {
			case "int":
				n := 0
				if v, ok := parseIntCell(raw); ok {
					n = v
				}
				if err := f.SetCellValue(sheetRaw, cell, n); err != nil {
					return err
				}
				if err := f.SetCellStyle(sheetRaw, cell, cell, st.ints); err != nil {
					return err
				}
			case "money":
				if v, ok := parseFloatCell(raw); ok {
					if err := f.SetCellValue(sheetRaw, cell, v); err != nil {
						return err
					}
				}
				if err := f.SetCellStyle(sheetRaw, cell, cell, st.money); err != nil {
					return err
				}
			case "date":
				if t, err := dateutils.ParseDate(raw); err == nil && !t.IsZero() {
					if err := f.SetCellValue(sheetRaw, cell, t); err != nil {
						return err
					}
					if err := f.SetCellStyle(sheetRaw, cell, cell, st.date); err != nil {
						return err
					}
				}
			default:
				if err := f.SetCellValue(sheetRaw, cell, raw); err != nil {
					return err
				}
			}
		}
	}

	return applyWidths(f, sheetRaw, widths)
}

var cleanHeaders = []string{
	"customer", "type", "num", "po", "terms", "invoice_date", "due_date",
	"amount", "days_past_due", "bucket", "is_overdue", "invoice_age_days",
}

func writeCleanSheet(f *excelize.File, st styles, records []models.CanonicalRecord) error {
	if _, err := f.NewSheet(sheetClean); err != nil {
		return fmt.Errorf("error creating sheet %s: %w", sheetClean, err)
	}

	widths, err := setHeader(f, sheetClean, cleanHeaders)
	if err != nil {
		return err
	}

	for r := range records {
		rec := &records[r]
		amount, _ := rec.Amount.Float64()
		values := []interface{}{
			rec.Customer, rec.DocType, rec.DocNum, rec.PO, rec.Terms,
			cellDate(rec.InvoiceDate), cellDate(rec.DueDate),
			amount, rec.DaysPastDue, rec.Bucket.String(), rec.IsOverdue, rec.InvoiceAgeDays,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if v == nil {
				continue
			}
			if err := f.SetCellValue(sheetClean, cell, v); err != nil {
				return err
			}
			track(widths, c, fmt.Sprintf("%v", v), r+2)
		}
	}

	for c, header := range cleanHeaders {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		switch columnKind(header) {
		case "money":
			err = f.SetColStyle(sheetClean, name, st.money)
		case "int":
			err = f.SetColStyle(sheetClean, name, st.ints)
		case "date":
			err = f.SetColStyle(sheetClean, name, st.date)
		}
		if err != nil {
			return err
		}
	}

	return applyWidths(f, sheetClean, widths)
}

func writeCustomerSheet(f *excelize.File, st styles, summaries []*models.CustomerSummary, asOf string) error {
	if _, err := f.NewSheet(sheetCustomer); err != nil {
		return fmt.Errorf("error creating sheet %s: %w", sheetCustomer, err)
	}

	headers := []string{"Customer", "As Of"}
	for _, b := range models.CanonicalBuckets {
		headers = append(headers, b.String())
	}
	headers = append(headers, "Total Due")

	widths, err := setHeader(f, sheetCustomer, headers)
	if err != nil {
		return err
	}

	for r, s := range summaries {
		values := []interface{}{s.Customer, asOf}
		for _, b := range models.CanonicalBuckets {
			v, _ := s.BucketTotals[b].Float64()
			values = append(values, v)
		}
		total, _ := s.TotalDue.Float64()
		values = append(values, total)

		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetCustomer, cell, v); err != nil {
				return err
			}
			track(widths, c, fmt.Sprintf("%v", v), r+2)
		}
	}

	for c, header := range headers {
		if columnKind(header) != "money" {
			continue
		}
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColStyle(sheetCustomer, name, st.money); err != nil {
			return err
		}
	}

	return applyWidths(f, sheetCustomer, widths)
}

// cellDate returns nil for the zero time so empty dates stay empty cells.
func cellDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

func parseIntCell(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

func parseFloatCell(s string) (float64, bool) {
	s = strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(s))
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return 0, false
}
