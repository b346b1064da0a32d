// FILE: lixenwraith/bitflags/internal/gen/gen.go

// Package gen renders Go source for the flag set types of a declaration
// document.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/lixenwraith/bitflags"
)

// DefaultImportPath is the import path of the runtime package used by generated code
const DefaultImportPath = "github.com/lixenwraith/bitflags"

// Options controls code generation
type Options struct {
	// Package overrides the document's package clause
	Package string
	// Source names the declaration file in the generated header
	Source string
	// ImportPath overrides DefaultImportPath
	ImportPath string
}

type fileData struct {
	Package string
	Source  string
	Import  string
	Types   []typeData
}

type typeData struct {
	Name     string
	TypeName string
	DefName  string
	TableVar string
	Repr     string
	Doc      []string
	Flags    []flagData
	Funcs    funcNames
}

type flagData struct {
	Name    string
	Ident   string
	Literal string
	Doc     []string
}

type funcNames struct {
	Empty, All, FromBits, FromBitsTruncate, FromBitsUnchecked, Parse string
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by bitflagsgen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import (
	"sync"

	"{{.Import}}"
)
{{range $t := .Types}}
type {{$t.DefName}} struct{}

var (
	{{$t.TableVar}}     *bitflags.Table[{{$t.Repr}}]
	{{$t.TableVar}}Once sync.Once
)

// Table returns the declaration table of {{$t.TypeName}}, built on first use.
func ({{$t.DefName}}) Table() *bitflags.Table[{{$t.Repr}}] {
	{{$t.TableVar}}Once.Do(func() {
		{{$t.TableVar}} = bitflags.NewBuilder[{{$t.Repr}}]().
			WithName({{printf "%q" $t.Name}}).
{{- range $t.Flags}}
			Flag({{printf "%q" .Name}}, {{.Literal}}).
{{- end}}
			MustBuild()
	})
	return {{$t.TableVar}}
}
{{range $t.Doc}}
//{{if .}} {{.}}{{end}}
{{- end}}
type {{$t.TypeName}} = bitflags.Set[{{$t.Repr}}, {{$t.DefName}}]
{{if $t.Flags}}
var (
{{- range $t.Flags}}
{{- range .Doc}}
	//{{if .}} {{.}}{{end}}
{{- end}}
	{{.Ident}} = bitflags.FromBitsUnchecked[{{$t.Repr}}, {{$t.DefName}}]({{.Literal}})
{{- end}}
)
{{end}}
// {{$t.Funcs.Empty}} returns the {{$t.TypeName}} with no flags set.
func {{$t.Funcs.Empty}}() {{$t.TypeName}} { return bitflags.Empty[{{$t.Repr}}, {{$t.DefName}}]() }

// {{$t.Funcs.All}} returns the {{$t.TypeName}} with every declared flag set.
func {{$t.Funcs.All}}() {{$t.TypeName}} { return bitflags.All[{{$t.Repr}}, {{$t.DefName}}]() }

// {{$t.Funcs.FromBits}} converts bits, failing on bits no flag declares.
func {{$t.Funcs.FromBits}}(bits {{$t.Repr}}) ({{$t.TypeName}}, error) {
	return bitflags.FromBits[{{$t.Repr}}, {{$t.DefName}}](bits)
}

// {{$t.Funcs.FromBitsTruncate}} converts bits, dropping bits no flag declares.
func {{$t.Funcs.FromBitsTruncate}}(bits {{$t.Repr}}) {{$t.TypeName}} {
	return bitflags.FromBitsTruncate[{{$t.Repr}}, {{$t.DefName}}](bits)
}

// {{$t.Funcs.FromBitsUnchecked}} converts bits as-is, keeping undeclared bits.
func {{$t.Funcs.FromBitsUnchecked}}(bits {{$t.Repr}}) {{$t.TypeName}} {
	return bitflags.FromBitsUnchecked[{{$t.Repr}}, {{$t.DefName}}](bits)
}

// {{$t.Funcs.Parse}} reads the "A | B" text form of {{$t.TypeName}} values.
func {{$t.Funcs.Parse}}(text string) ({{$t.TypeName}}, error) {
	return bitflags.Parse[{{$t.Repr}}, {{$t.DefName}}](text)
}
{{end}}`))

// Generate renders gofmt-formatted Go source for every type of doc
func Generate(doc *bitflags.Document, opts Options) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil declaration document")
	}
	if len(doc.Types) == 0 {
		return nil, fmt.Errorf("declaration document has no types")
	}

	data := fileData{
		Package: opts.Package,
		Source:  opts.Source,
		Import:  opts.ImportPath,
	}
	if data.Package == "" {
		data.Package = doc.Package
	}
	if data.Package == "" {
		return nil, fmt.Errorf("no package name: set 'package' in the document or pass one explicitly")
	}
	if data.Import == "" {
		data.Import = DefaultImportPath
	}

	idents := make(map[string]string)
	for i := range doc.Types {
		td, err := buildType(&doc.Types[i])
		if err != nil {
			return nil, err
		}
		for _, id := range td.identifiers() {
			if token.IsKeyword(id) {
				return nil, fmt.Errorf("type %s: %w: identifier %s is a Go keyword", td.Name, bitflags.ErrInvalidName, id)
			}
			if owner, taken := idents[id]; taken {
				return nil, fmt.Errorf("identifier %s of type %s collides with type %s", id, td.Name, owner)
			}
			idents[id] = td.Name
		}
		data.Types = append(data.Types, td)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not format: %w", err)
	}
	return src, nil
}

func buildType(decl *bitflags.TypeDecl) (typeData, error) {
	repr, err := decl.Representation()
	if err != nil {
		return typeData{}, err
	}
	resolved, err := decl.Resolve()
	if err != nil {
		return typeData{}, err
	}

	exported := decl.Exported()
	base := upperFirst(decl.Name)
	vis := func(s string) string {
		if exported {
			return upperFirst(s)
		}
		return lowerFirst(s)
	}

	prefix := decl.Prefix
	if prefix == "" {
		prefix = base
	}

	td := typeData{
		Name:     decl.Name,
		TypeName: vis(base),
		DefName:  lowerFirst(base) + "Def",
		TableVar: lowerFirst(base) + "Table",
		Repr:     repr.Name,
		Funcs: funcNames{
			Empty:             vis("Empty" + base),
			All:               vis("All" + base),
			FromBits:          vis(base + "FromBits"),
			FromBitsTruncate:  vis(base + "FromBitsTruncate"),
			FromBitsUnchecked: vis(base + "FromBitsUnchecked"),
			Parse:             vis("Parse" + base),
		},
	}

	if decl.Doc != "" {
		td.Doc = commentLines(td.TypeName + " " + decl.Doc)
	} else {
		td.Doc = []string{fmt.Sprintf("%s is a set of %s flags.", td.TypeName, repr.Name)}
	}

	for _, f := range resolved {
		fd := flagData{
			Name:    f.Name,
			Ident:   vis(prefix + upperFirst(f.Name)),
			Literal: literal(f.Bits, repr),
		}
		if f.Doc != "" {
			fd.Doc = commentLines(fd.Ident + " " + f.Doc)
		}
		td.Flags = append(td.Flags, fd)
	}
	return td, nil
}

func (td typeData) identifiers() []string {
	ids := []string{td.TypeName, td.DefName, td.TableVar, td.TableVar + "Once",
		td.Funcs.Empty, td.Funcs.All, td.Funcs.FromBits,
		td.Funcs.FromBitsTruncate, td.Funcs.FromBitsUnchecked, td.Funcs.Parse}
	for _, f := range td.Flags {
		ids = append(ids, f.Ident)
	}
	return ids
}

// literal renders a bit pattern as a Go constant of repr
func literal(bits uint64, repr bitflags.Repr) string {
	if bits == 0 {
		return "0"
	}
	if !repr.Signed {
		return fmt.Sprintf("%#x", bits)
	}

	v := int64(bits)
	if repr.Bits < 64 && bits>>(repr.Bits-1)&1 == 1 {
		v = int64(bits | ^repr.Mask())
	}
	if v < 0 {
		return fmt.Sprintf("-%#x", uint64(-v))
	}
	return fmt.Sprintf("%#x", v)
}

func commentLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		lines = append(lines, strings.TrimRight(line, " \t"))
	}
	return lines
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
