// FILE: lixenwraith/bitflags/internal/gen/discovery.go
package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/bitflags"
)

// DiscoveryOptions configures automatic declaration file discovery
type DiscoveryOptions struct {
	// Base name of the declaration file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Directories to search (in order)
	Paths []string

	// Environment variable to check for an explicit path
	EnvVar string
}

// DefaultDiscoveryOptions searches dir for bitflags.{toml,yaml,yml,json}
func DefaultDiscoveryOptions(dir string) DiscoveryOptions {
	return DiscoveryOptions{
		Name:       "bitflags",
		Extensions: []string{".toml", ".yaml", ".yml", ".json"},
		Paths:      []string{dir},
		EnvVar:     "BITFLAGS_DECL",
	}
}

// Discover returns the first declaration file found
func Discover(opts DiscoveryOptions) (string, error) {
	// Check environment variable
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path, nil
		}
	}

	for _, dir := range opts.Paths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("failed to check '%s': %w", path, err)
			}
		}
	}

	return "", fmt.Errorf("%w: no %s file in %v", bitflags.ErrDeclarationNotFound, opts.Name, opts.Paths)
}
