package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("Name,Type\n"), 0600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestScoreName(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		expected int
	}{
		{"No keywords", "report.csv", 0},
		{"Single keyword", "aging.csv", 1},
		{"Several keywords", "qb_ar_aging_detail.csv", 3},
		{"Case insensitive", "AR_Aging.CSV", 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scoreName(tc.fileName))
		})
	}
}

func TestAutoDetectPrefersKeywordScore(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, dir, "notes.csv", now)
	want := touch(t, dir, "ar_aging_detail.csv", now.Add(-24*time.Hour))

	// The older file wins on name score.
	assert.Equal(t, want, AutoDetect([]string{dir}))
}

func TestAutoDetectTieBreaksByModTime(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, dir, "aging_old.csv", now.Add(-48*time.Hour))
	want := touch(t, dir, "aging_new.csv", now)

	assert.Equal(t, want, AutoDetect([]string{dir}))
}

func TestAutoDetectSearchesAllDirs(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := touch(t, second, "receivables.csv", time.Now())

	assert.Equal(t, want, AutoDetect([]string{first, second}))
}

func TestAutoDetectNoCandidates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0600))

	assert.Equal(t, "", AutoDetect([]string{dir}))
}

func TestAutoDetectIgnoresMissingDirs(t *testing.T) {
	dir := t.TempDir()
	want := touch(t, dir, "aging.csv", time.Now())

	assert.Equal(t, want, AutoDetect([]string{filepath.Join(dir, "missing"), dir}))
}

func TestDefaultSearchDirs(t *testing.T) {
	dirs := DefaultSearchDirs()
	require.NotEmpty(t, dirs)
	assert.Equal(t, ".", dirs[0])
	assert.Equal(t, "input", dirs[1])
}
