// FILE: lixenwraith/bitflags/builder.go
package bitflags

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ValidatorFunc defines the signature for a function that can validate a built Table.
// It receives the complete table and should return an error if validation fails.
type ValidatorFunc[T constraints.Integer] func(t *Table[T]) error

// declaration is a pending flag: either literal bits or an expression
type declaration[T constraints.Integer] struct {
	name   string
	bits   T
	expr   string
	isExpr bool
}

// Builder provides a fluent interface for declaring a flag table.
// Declarations are validated once, in Build.
type Builder[T constraints.Integer] struct {
	name       string
	file       string
	fileType   string
	decls      []declaration[T]
	err        error
	validators []ValidatorFunc[T]
}

// NewBuilder creates a new table builder for representation T
func NewBuilder[T constraints.Integer]() *Builder[T] {
	return &Builder[T]{
		validators: make([]ValidatorFunc[T], 0),
	}
}

// WithName records the name of the flag set type, used in error messages
func (b *Builder[T]) WithName(name string) *Builder[T] {
	b.name = name
	return b
}

// Flag declares a flag with literal bits. Zero and composite values are allowed.
func (b *Builder[T]) Flag(name string, bits T) *Builder[T] {
	b.decls = append(b.decls, declaration[T]{name: name, bits: bits})
	return b
}

// FlagExpr declares a flag from an expression such as "1 << 3", "0b0100" or
// "Read | Write". Names must refer to flags declared earlier.
func (b *Builder[T]) FlagExpr(name, expr string) *Builder[T] {
	b.decls = append(b.decls, declaration[T]{name: name, expr: expr, isExpr: true})
	return b
}

// WithFile loads declarations from a TOML, YAML or JSON declaration file.
// typeName selects the type inside the document; it may be empty for
// single-type documents. File declarations precede those added in code.
func (b *Builder[T]) WithFile(path, typeName string) *Builder[T] {
	b.file = path
	b.fileType = typeName
	return b
}

// WithDeclaration adds the flags of an already parsed type declaration
func (b *Builder[T]) WithDeclaration(td *TypeDecl) *Builder[T] {
	if td == nil {
		b.err = errors.Join(b.err, fmt.Errorf("nil type declaration"))
		return b
	}
	if b.name == "" {
		b.name = td.Name
	}
	if err := b.checkRepr(td); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	for _, fd := range td.Flags {
		b.decls = append(b.decls, declaration[T]{name: fd.Name, expr: fd.Value, isExpr: true})
	}
	return b
}

// WithValidator adds a validation function that runs at the end of the build process.
// Multiple validators can be added and are executed in the order they are added.
func (b *Builder[T]) WithValidator(fn ValidatorFunc[T]) *Builder[T] {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build validates all declarations and creates the immutable Table
func (b *Builder[T]) Build() (*Table[T], error) {
	if b.file != "" {
		doc, err := LoadDocument(b.file)
		if err != nil {
			return nil, err
		}
		td, err := doc.Type(b.fileType)
		if err != nil {
			return nil, fmt.Errorf("declaration file '%s': %w", b.file, err)
		}
		code := b.decls
		b.decls = nil
		b.WithDeclaration(td)
		b.decls = append(b.decls, code...)
		b.file = ""
	}

	if b.err != nil {
		return nil, b.err
	}

	t := &Table[T]{
		name:  b.name,
		flags: make([]Flag[T], 0, len(b.decls)),
		index: make(map[string]int, len(b.decls)),
	}
	repr := reprOf[T]()
	lookup := func(name string) (uint64, bool) {
		bits, ok := t.Lookup(name)
		return toUint64(bits), ok
	}

	for _, d := range b.decls {
		if !isValidFlagName(d.name) {
			return nil, fmt.Errorf("%s: %w: %q", b.label(), ErrInvalidName, d.name)
		}
		if _, dup := t.index[d.name]; dup {
			return nil, fmt.Errorf("%s: %w: %q", b.label(), ErrDuplicateFlag, d.name)
		}

		bits := d.bits
		if d.isExpr {
			v, err := evalExpr(d.expr, repr, lookup)
			if err != nil {
				return nil, fmt.Errorf("%s flag %q: %w", b.label(), d.name, err)
			}
			bits = T(v)
		}

		t.index[d.name] = len(t.flags)
		t.flags = append(t.flags, Flag[T]{Name: d.name, Bits: bits})
		t.all |= bits
		if bits == 0 {
			t.hasZero = true
		}
	}

	// Run validators
	for _, validator := range b.validators {
		if err := validator(t); err != nil {
			return nil, fmt.Errorf("%s: table validation failed: %w", b.label(), err)
		}
	}

	return t, nil
}

// MustBuild is like Build but panics on error.
// Intended for package-level table variables.
func (b *Builder[T]) MustBuild() *Table[T] {
	t, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("bitflags: table build failed: %v", err))
	}
	return t
}

func (b *Builder[T]) label() string {
	if b.name == "" {
		return "flag table"
	}
	return "flag table " + b.name
}

// checkRepr rejects declarations whose representation differs from T
func (b *Builder[T]) checkRepr(td *TypeDecl) error {
	if td.Repr == "" {
		return nil
	}
	declared, err := td.Representation()
	if err != nil {
		return err
	}
	have := reprOf[T]()
	if declared.Bits != have.Bits || declared.Signed != have.Signed {
		return fmt.Errorf("type %q declares %s, builder uses %s", td.Name, declared.Name, have.Name)
	}
	return nil
}

// reprOf describes T
func reprOf[T constraints.Integer]() Repr {
	var zero T
	minusOne := zero - 1
	return Repr{
		Name:   fmt.Sprintf("%T", zero),
		Bits:   bitSize[T](),
		Signed: minusOne < zero,
	}
}
