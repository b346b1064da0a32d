// FILE: lixenwraith/bitflags/iter.go
package bitflags

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Collect returns the union of every set in seq; Empty for an empty sequence
func Collect[T constraints.Integer, D Definition[T]](seq iter.Seq[Set[T, D]]) Set[T, D] {
	var out Set[T, D]
	out.Extend(seq)
	return out
}

// Of returns the union of values
func Of[T constraints.Integer, D Definition[T]](values ...Set[T, D]) Set[T, D] {
	var out Set[T, D]
	for _, v := range values {
		out.bits |= v.bits
	}
	return out
}

// Extend inserts every set of seq
func (s *Set[T, D]) Extend(seq iter.Seq[Set[T, D]]) {
	if seq == nil {
		return
	}
	for v := range seq {
		s.bits |= v.bits
	}
}

// Iter yields each declared non-zero flag fully contained in s, in
// declaration order. Composite flags are yielded alongside their parts.
func (s Set[T, D]) Iter() iter.Seq2[string, Set[T, D]] {
	return func(yield func(string, Set[T, D]) bool) {
		for _, f := range tableOf[T, D]().flags {
			if f.Bits == 0 || s.bits&f.Bits != f.Bits {
				continue
			}
			if !yield(f.Name, Set[T, D]{bits: f.Bits}) {
				return
			}
		}
	}
}

// Names returns the names yielded by Iter
func (s Set[T, D]) Names() []string {
	var names []string
	for name := range s.Iter() {
		names = append(names, name)
	}
	return names
}
