// Package scanner locates the AR export CSV when no input path is given.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"netc/ar-statements/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// nameKeywords boost candidates whose file names look like AR exports.
var nameKeywords = []string{"aging", "ar", "receivable", "qb", "ar_detail", "quickbooks"}

type candidate struct {
	path    string
	score   int
	modTime time.Time
}

func scoreName(name string) int {
	lower := strings.ToLower(name)
	score := 0
	for _, kw := range nameKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}

// DefaultSearchDirs returns the directories searched when --input is absent:
// the working directory, ./input and ~/Downloads.
func DefaultSearchDirs() []string {
	dirs := []string{".", "input"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Downloads"))
	}
	return dirs
}

// AutoDetect picks the most plausible AR export among *.csv files in the
// given directories: highest keyword score first, newest modification time
// as the tie-break. Returns "" when no candidate exists.
func AutoDetect(searchDirs []string) string {
	var cands []candidate

	for _, dir := range searchDirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
		if err != nil {
			continue
		}
		for _, p := range matches {
			info, err := os.Stat(p)
			if err != nil || info.IsDir() {
				continue
			}
			cands = append(cands, candidate{
				path:    p,
				score:   scoreName(filepath.Base(p)),
				modTime: info.ModTime(),
			})
		}
	}

	if len(cands) == 0 {
		return ""
	}

	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].modTime.After(cands[j].modTime)
	})

	log.WithField(logging.FieldFile, cands[0].path).Info("Auto-detected input CSV")
	return cands[0].path
}
