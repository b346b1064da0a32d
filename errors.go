// FILE: lixenwraith/bitflags/errors.go
package bitflags

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is
var (
	// ErrUnrecognizedBits is returned by strict conversions when the raw value
	// carries bits outside the all-flags mask
	ErrUnrecognizedBits = errors.New("unrecognized bits")

	ErrInvalidName         = errors.New("invalid flag name")
	ErrDuplicateFlag       = errors.New("duplicate flag")
	ErrUnknownFlag         = errors.New("unknown flag")
	ErrOverflow            = errors.New("value overflows representation")
	ErrInvalidLength       = errors.New("invalid encoded length")
	ErrDeclarationNotFound = errors.New("declaration file not found")
)

// UnrecognizedBitsError carries the rejected raw value and the subset of its
// bits that no declared flag covers.
type UnrecognizedBitsError struct {
	Raw          uint64
	Unrecognized uint64
}

func (e *UnrecognizedBitsError) Error() string {
	return fmt.Sprintf("%s: %#x in %#x", ErrUnrecognizedBits, e.Unrecognized, e.Raw)
}

// Is reports whether target is ErrUnrecognizedBits
func (e *UnrecognizedBitsError) Is(target error) bool {
	return target == ErrUnrecognizedBits
}
