// FILE: lixenwraith/bitflags/table.go
package bitflags

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Flag is a single named entry of a declaration table
type Flag[T constraints.Integer] struct {
	Name string
	Bits T
}

// Table is the immutable, ordered declaration table of a flag set type.
// It is produced by Builder.Build and never changes afterwards.
type Table[T constraints.Integer] struct {
	name    string
	flags   []Flag[T]
	index   map[string]int
	all     T
	hasZero bool // a zero-valued flag is declared
}

// Definition binds a flag set type to its declaration table.
// Implementations are zero-size types whose Table method returns a
// package-level table built once at init time:
//
//	type permDef struct{}
//
//	var permTable = bitflags.NewBuilder[uint8]().
//	    Flag("Read", 1<<0).
//	    Flag("Write", 1<<1).
//	    MustBuild()
//
//	func (permDef) Table() *bitflags.Table[uint8] { return permTable }
//
//	type Perm = bitflags.Set[uint8, permDef]
//
// Package-level initializers that call into the table (All, FromBits, ...)
// are not ordered after permTable by the compiler; code generated by
// bitflagsgen builds the table on first use instead.
type Definition[T constraints.Integer] interface {
	Table() *Table[T]
}

// Name returns the type name recorded for the table, if any
func (t *Table[T]) Name() string {
	return t.name
}

// All returns the union of every declared value
func (t *Table[T]) All() T {
	return t.all
}

// Len returns the number of declared flags
func (t *Table[T]) Len() int {
	return len(t.flags)
}

// Flags returns a copy of the declared flags in declaration order
func (t *Table[T]) Flags() []Flag[T] {
	out := make([]Flag[T], len(t.flags))
	copy(out, t.flags)
	return out
}

// Lookup returns the bits declared under name
func (t *Table[T]) Lookup(name string) (T, bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.flags[i].Bits, true
}

// HasZeroFlag reports whether a flag with value 0 was declared.
// Such a flag is contained in every value, including the empty one.
func (t *Table[T]) HasZeroFlag() bool {
	return t.hasZero
}

// tableOf resolves the table behind a definition type
func tableOf[T constraints.Integer, D Definition[T]]() *Table[T] {
	var d D
	t := d.Table()
	if t == nil {
		panic(fmt.Sprintf("bitflags: definition %T returned a nil table", d))
	}
	return t
}

// bitSize returns the width of T in bits
func bitSize[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// toUint64 reinterprets v as an unsigned value of T's width
func toUint64[T constraints.Integer](v T) uint64 {
	u := uint64(v)
	if size := bitSize[T](); size < 64 {
		u &= (uint64(1) << size) - 1
	}
	return u
}
