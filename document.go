// FILE: lixenwraith/bitflags/document.go
package bitflags

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Visibility values for TypeDecl.Visibility
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Document is a declaration file holding one or more flag set types.
//
// TOML form:
//
//	package = "perm"
//
//	[[types]]
//	name = "Perm"
//	repr = "uint8"
//
//	[[types.flags]]
//	name = "Read"
//	value = "1 << 0"
//
//	[[types.flags]]
//	name = "ReadWrite"
//	value = "Read | Write"
type Document struct {
	Package string     `mapstructure:"package"`
	Types   []TypeDecl `mapstructure:"types"`
}

// TypeDecl declares one flag set type
type TypeDecl struct {
	Name       string     `mapstructure:"name"`
	Repr       string     `mapstructure:"repr"`
	Visibility string     `mapstructure:"visibility"`
	Prefix     string     `mapstructure:"prefix"`
	Doc        string     `mapstructure:"doc"`
	Flags      []FlagDecl `mapstructure:"flags"`
}

// FlagDecl declares one flag. Value is an expression, see Builder.FlagExpr.
type FlagDecl struct {
	Name  string `mapstructure:"name"`
	Value string `mapstructure:"value"`
	Doc   string `mapstructure:"doc"`
}

// ResolvedFlag is a flag whose value expression has been evaluated
type ResolvedFlag struct {
	Name string
	Bits uint64
	Doc  string
}

// LoadDocument reads and parses a declaration file.
// The format is taken from the extension, falling back to content sniffing.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDeclarationNotFound, path)
		}
		return nil, fmt.Errorf("failed to read declaration file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	doc, err := ParseDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("declaration file '%s': %w", path, err)
	}
	return doc, nil
}

// ParseDocument parses a declaration document in the given format
// ("toml", "yaml" or "json")
func ParseDocument(data []byte, format string) (*Document, error) {
	raw := make(map[string]any)

	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // keep 64-bit literals exact
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to determine declaration format %q", format)
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		WeaklyTypedInput: true, // numeric values become literal expressions
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid declaration document: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks type names and resolves every type once
func (d *Document) Validate() error {
	if len(d.Types) == 0 {
		return fmt.Errorf("declaration document has no types")
	}

	seen := make(map[string]bool, len(d.Types))
	var errs []error
	for i := range d.Types {
		td := &d.Types[i]
		if !isValidFlagName(td.Name) {
			errs = append(errs, fmt.Errorf("%w: type name %q", ErrInvalidName, td.Name))
			continue
		}
		// Private types are named with a lowercase first letter
		if !td.Exported() && token.IsKeyword(strings.ToLower(td.Name[:1])+td.Name[1:]) {
			errs = append(errs, fmt.Errorf("%w: private type name %q is a Go keyword", ErrInvalidName, td.Name))
			continue
		}
		if seen[td.Name] {
			errs = append(errs, fmt.Errorf("%w: type %q declared twice", ErrDuplicateFlag, td.Name))
			continue
		}
		seen[td.Name] = true
		if _, err := td.Resolve(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Type returns the named type declaration. An empty name selects the only
// type of a single-type document.
func (d *Document) Type(name string) (*TypeDecl, error) {
	if name == "" {
		if len(d.Types) != 1 {
			return nil, fmt.Errorf("document declares %d types, a type name is required", len(d.Types))
		}
		return &d.Types[0], nil
	}
	for i := range d.Types {
		if d.Types[i].Name == name {
			return &d.Types[i], nil
		}
	}
	return nil, fmt.Errorf("type %q not declared", name)
}

// Exported reports whether generated identifiers are exported
func (td *TypeDecl) Exported() bool {
	return td.Visibility == "" || td.Visibility == VisibilityPublic
}

// Representation returns the declared representation, uint32 when omitted
func (td *TypeDecl) Representation() (Repr, error) {
	if td.Repr == "" {
		return reprs["uint32"], nil
	}
	r, ok := LookupRepr(td.Repr)
	if !ok {
		return Repr{}, fmt.Errorf("type %q: unsupported representation %q", td.Name, td.Repr)
	}
	return r, nil
}

// Resolve validates names and evaluates every value expression in
// declaration order
func (td *TypeDecl) Resolve() ([]ResolvedFlag, error) {
	if td.Visibility != "" && td.Visibility != VisibilityPublic && td.Visibility != VisibilityPrivate {
		return nil, fmt.Errorf("type %q: unknown visibility %q", td.Name, td.Visibility)
	}
	repr, err := td.Representation()
	if err != nil {
		return nil, err
	}

	resolved := make([]ResolvedFlag, 0, len(td.Flags))
	values := make(map[string]uint64, len(td.Flags))
	lookup := func(name string) (uint64, bool) {
		v, ok := values[name]
		return v, ok
	}

	for _, fd := range td.Flags {
		if !isValidFlagName(fd.Name) {
			return nil, fmt.Errorf("type %q: %w: %q", td.Name, ErrInvalidName, fd.Name)
		}
		if _, dup := values[fd.Name]; dup {
			return nil, fmt.Errorf("type %q: %w: %q", td.Name, ErrDuplicateFlag, fd.Name)
		}
		bits, err := evalExpr(fd.Value, repr, lookup)
		if err != nil {
			return nil, fmt.Errorf("type %q flag %q: %w", td.Name, fd.Name, err)
		}
		values[fd.Name] = bits
		resolved = append(resolved, ResolvedFlag{Name: fd.Name, Bits: bits, Doc: strings.TrimSpace(fd.Doc)})
	}
	return resolved, nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	return ""
}
