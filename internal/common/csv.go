// Package common provides shared CSV reading and writing used by the
// pipeline and the report writers.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"netc/ar-statements/internal/logging"
	"netc/ar-statements/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRawTable reads a CSV export into a RawTable, keeping the original
// header spellings (trimmed) and string-typed cells. Input headers are
// arbitrary, so this reads positionally with encoding/csv rather than
// binding to struct tags; ragged rows are kept and padded on access.
func ReadRawTable(filePath string) (*models.RawTable, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading AR export")

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // allow variable number of fields
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.WithError(err).Warn("Skipping malformed CSV row")
			continue
		}
		rows = append(rows, record)
	}

	log.WithField(logging.FieldCount, len(rows)).Info("Successfully read CSV data")
	return models.NewRawTable(filePath, header, rows), nil
}

// WriteCSVFile writes struct-tagged rows to a CSV file using gocsv, creating
// the parent directory if needed.
func WriteCSVFile[T any](rows []T, filePath string) error {
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Writing CSV file")

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
