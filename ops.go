// FILE: lixenwraith/bitflags/ops.go
package bitflags

// Union returns the flags present in either set
func (s Set[T, D]) Union(other Set[T, D]) Set[T, D] {
	return Set[T, D]{bits: s.bits | other.bits}
}

// Intersection returns the flags present in both sets
func (s Set[T, D]) Intersection(other Set[T, D]) Set[T, D] {
	return Set[T, D]{bits: s.bits & other.bits}
}

// Difference returns the flags of s that are not in other
func (s Set[T, D]) Difference(other Set[T, D]) Set[T, D] {
	return Set[T, D]{bits: s.bits &^ other.bits}
}

// SymmetricDifference returns the flags present in exactly one of the sets
func (s Set[T, D]) SymmetricDifference(other Set[T, D]) Set[T, D] {
	return Set[T, D]{bits: s.bits ^ other.bits}
}

// Complement returns every declared flag not set in s.
// The result never carries bits outside the all-flags mask.
func (s Set[T, D]) Complement() Set[T, D] {
	return Set[T, D]{bits: ^s.bits & tableOf[T, D]().all}
}

// Or is Union
func (s Set[T, D]) Or(other Set[T, D]) Set[T, D] { return s.Union(other) }

// And is Intersection
func (s Set[T, D]) And(other Set[T, D]) Set[T, D] { return s.Intersection(other) }

// Sub is Difference
func (s Set[T, D]) Sub(other Set[T, D]) Set[T, D] { return s.Difference(other) }

// Xor is SymmetricDifference
func (s Set[T, D]) Xor(other Set[T, D]) Set[T, D] { return s.SymmetricDifference(other) }

// Not is Complement
func (s Set[T, D]) Not() Set[T, D] { return s.Complement() }

// Insert sets the bits of other in place
func (s *Set[T, D]) Insert(other Set[T, D]) {
	s.bits |= other.bits
}

// Remove clears the bits of other in place
func (s *Set[T, D]) Remove(other Set[T, D]) {
	s.bits &^= other.bits
}

// Toggle flips the bits of other in place: set bits are cleared and clear
// bits are set
func (s *Set[T, D]) Toggle(other Set[T, D]) {
	s.bits ^= other.bits
}

// Retain keeps only the bits also present in other
func (s *Set[T, D]) Retain(other Set[T, D]) {
	s.bits &= other.bits
}

// Set inserts other when on is true and removes it otherwise
func (s *Set[T, D]) Set(other Set[T, D], on bool) {
	if on {
		s.Insert(other)
	} else {
		s.Remove(other)
	}
}

// OrAssign is Insert
func (s *Set[T, D]) OrAssign(other Set[T, D]) { s.Insert(other) }

// AndAssign is Retain
func (s *Set[T, D]) AndAssign(other Set[T, D]) { s.Retain(other) }

// SubAssign is Remove
func (s *Set[T, D]) SubAssign(other Set[T, D]) { s.Remove(other) }

// XorAssign is Toggle
func (s *Set[T, D]) XorAssign(other Set[T, D]) { s.Toggle(other) }

// Clear removes every bit
func (s *Set[T, D]) Clear() {
	s.bits = 0
}
