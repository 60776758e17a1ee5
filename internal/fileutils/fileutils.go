// Package fileutils provides the file-system helpers used when laying out
// and packaging the output tree.
package fileutils

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"netc/ar-statements/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates a directory (and parents) if needed
func EnsureDirectoryExists(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return fmt.Errorf("error creating directory %s: %w", dirPath, err)
	}
	return nil
}

// WriteFile writes data to a file, creating parent directories as needed
func WriteFile(filePath string, data []byte) error {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0640); err != nil {
		return fmt.Errorf("error writing file %s: %w", filePath, err)
	}
	return nil
}

// ZipDirectory packages the contents of srcDir into zipPath, with archive
// paths relative to srcDir.
func ZipDirectory(srcDir, zipPath string) error {
	log.WithFields(
		logging.Field{Key: "dir", Value: srcDir},
		logging.Field{Key: logging.FieldFile, Value: zipPath},
	).Info("Zipping output directory")

	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("error creating zip file: %w", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.WithError(err).Warn("Failed to close zip file")
		}
	}()

	zw := zip.NewWriter(out)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.WithError(err).Warn("Failed to close file")
			}
		}()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		_ = zw.Close()
		return fmt.Errorf("error zipping directory: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("error finalizing zip: %w", err)
	}
	return nil
}
