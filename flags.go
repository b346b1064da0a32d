// FILE: lixenwraith/bitflags/flags.go
package bitflags

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Set is a flag set value of the type described by definition D.
// It holds exactly one T, so it is comparable with == and usable as a map key.
// Sets with different D are distinct types and never mix.
type Set[T constraints.Integer, D Definition[T]] struct {
	bits T
}

// Empty returns the set with no bits
func Empty[T constraints.Integer, D Definition[T]]() Set[T, D] {
	return Set[T, D]{}
}

// All returns the set of every declared flag
func All[T constraints.Integer, D Definition[T]]() Set[T, D] {
	return Set[T, D]{bits: tableOf[T, D]().all}
}

// FromBits converts raw into a set, failing with an *UnrecognizedBitsError
// if raw has bits outside the all-flags mask
func FromBits[T constraints.Integer, D Definition[T]](raw T) (Set[T, D], error) {
	all := tableOf[T, D]().all
	if extra := raw &^ all; extra != 0 {
		return Set[T, D]{}, &UnrecognizedBitsError{Raw: toUint64(raw), Unrecognized: toUint64(extra)}
	}
	return Set[T, D]{bits: raw}, nil
}

// FromBitsTruncate converts raw into a set, dropping bits outside the
// all-flags mask
func FromBitsTruncate[T constraints.Integer, D Definition[T]](raw T) Set[T, D] {
	return Set[T, D]{bits: raw & tableOf[T, D]().all}
}

// FromBitsUnchecked converts raw into a set keeping every bit, including
// bits no declared flag covers. For interop with foreign bit patterns only.
func FromBitsUnchecked[T constraints.Integer, D Definition[T]](raw T) Set[T, D] {
	return Set[T, D]{bits: raw}
}

// Named returns the declared flag called name
func Named[T constraints.Integer, D Definition[T]](name string) (Set[T, D], bool) {
	bits, ok := tableOf[T, D]().Lookup(name)
	return Set[T, D]{bits: bits}, ok
}

// MustNamed is like Named but panics when name is not declared
func MustNamed[T constraints.Integer, D Definition[T]](name string) Set[T, D] {
	s, ok := Named[T, D](name)
	if !ok {
		var d D
		panic(fmt.Sprintf("bitflags: flag %q not declared by %T", name, d))
	}
	return s
}

// Bits returns the underlying integer
func (s Set[T, D]) Bits() T {
	return s.bits
}

// IsEmpty reports whether no bits are set
func (s Set[T, D]) IsEmpty() bool {
	return s.bits == 0
}

// IsAll reports whether the bits equal the all-flags mask exactly
func (s Set[T, D]) IsAll() bool {
	return s.bits == tableOf[T, D]().all
}

// Contains reports whether every bit of other is set in s.
// A zero-valued other is always contained.
func (s Set[T, D]) Contains(other Set[T, D]) bool {
	return s.bits&other.bits == other.bits
}

// Intersects reports whether s and other share any bit
func (s Set[T, D]) Intersects(other Set[T, D]) bool {
	return s.bits&other.bits != 0
}

// Equal reports whether both sets hold the same bits
func (s Set[T, D]) Equal(other Set[T, D]) bool {
	return s.bits == other.bits
}

// Compare orders sets by the numeric value of their bits
func (s Set[T, D]) Compare(other Set[T, D]) int {
	return cmp.Compare(s.bits, other.bits)
}

// Less reports whether s orders before other
func (s Set[T, D]) Less(other Set[T, D]) bool {
	return s.bits < other.bits
}
