package logging

import "sync"

// LogEntry records a single message captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// MockLogger captures log output for assertions in tests.
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
	fields  map[string]interface{}
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{fields: map[string]interface{}{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	merged := make(map[string]interface{}, len(m.fields)+len(fields))
	for k, v := range m.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}
	m.entries = append(m.entries, LogEntry{Level: level, Message: msg, Fields: merged})
}

// Debug records a debug-level entry
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info-level entry
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warn-level entry
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error-level entry
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// WithError returns the same mock with the error attached as a field
func (m *MockLogger) WithError(err error) Logger {
	return m.WithField("error", err)
}

// WithField returns the same mock with an extra sticky field
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fields[key] = value
	return m
}

// WithFields returns the same mock with extra sticky fields
func (m *MockLogger) WithFields(fields ...Field) Logger {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range fields {
		m.fields[f.Key] = f.Value
	}
	return m
}

// Entries returns all captured entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// HasEntry reports whether a message was logged at the given level.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, e := range m.Entries() {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}
