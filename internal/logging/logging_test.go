package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetLevel(logrus.DebugLevel)

	logger := NewLogrusAdapterFromLogger(base)
	logger.Info("reading export", Field{Key: FieldFile, Value: "ar.csv"})

	out := buf.String()
	assert.Contains(t, out, `"msg":"reading export"`)
	assert.Contains(t, out, `"file_path":"ar.csv"`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestLogrusAdapterWithChaining(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	derived := logger.WithField(FieldCustomer, "Acme").WithError(errors.New("boom"))
	derived.Warn("statement write failed")

	out := buf.String()
	assert.Contains(t, out, `"customer":"Acme"`)
	assert.Contains(t, out, `"error":"boom"`)

	// The parent logger is unchanged.
	buf.Reset()
	logger.Info("clean message")
	assert.NotContains(t, buf.String(), "Acme")
}

func TestNewLogrusAdapterInvalidLevelFallsBack(t *testing.T) {
	logger := NewLogrusAdapter("definitely-not-a-level", "text")
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := NewMockLogger()
	SetDefaultLogger(mock)
	assert.Equal(t, Logger(mock), GetLogger())

	// nil is ignored rather than clearing the default.
	SetDefaultLogger(nil)
	assert.Equal(t, Logger(mock), GetLogger())
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("pipeline complete", Field{Key: FieldCount, Value: 4})
	mock.Warn("dropped rows")

	require.Len(t, mock.Entries(), 2)
	assert.True(t, mock.HasEntry("info", "pipeline complete"))
	assert.True(t, mock.HasEntry("warn", "dropped rows"))
	assert.False(t, mock.HasEntry("error", "pipeline complete"))
	assert.Equal(t, 4, mock.Entries()[0].Fields[FieldCount])
}
