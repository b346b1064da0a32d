// FILE: lixenwraith/bitflags/internal/gen/write.go
package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath derives the generated file name from the declaration path:
// "perm.toml" becomes "perm_bitflags.go" in the same directory
func OutputPath(declPath string) string {
	base := strings.TrimSuffix(filepath.Base(declPath), filepath.Ext(declPath))
	return filepath.Join(filepath.Dir(declPath), base+"_bitflags.go")
}

// WriteFile writes src to path atomically. It reports false without writing
// when the file already holds src.
func WriteFile(path string, src []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, src) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(src); err != nil {
		tempFile.Close()
		return false, fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return false, fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return false, fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return false, fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return false, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return true, nil
}
