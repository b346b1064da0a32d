// FILE: lixenwraith/bitflags/expr.go
package bitflags

import (
	"fmt"
	"strconv"
	"strings"
)

// Repr describes an integer representation by width and signedness
type Repr struct {
	Name   string
	Bits   int
	Signed bool
}

// reprs lists the Go integer types accepted as flag representations.
// uint, int and uintptr are taken as 64-bit.
var reprs = map[string]Repr{
	"uint8":   {"uint8", 8, false},
	"byte":    {"byte", 8, false},
	"uint16":  {"uint16", 16, false},
	"uint32":  {"uint32", 32, false},
	"uint64":  {"uint64", 64, false},
	"uint":    {"uint", 64, false},
	"uintptr": {"uintptr", 64, false},
	"int8":    {"int8", 8, true},
	"int16":   {"int16", 16, true},
	"int32":   {"int32", 32, true},
	"int64":   {"int64", 64, true},
	"int":     {"int", 64, true},
}

// LookupRepr returns the representation for a Go integer type name
func LookupRepr(name string) (Repr, bool) {
	r, ok := reprs[strings.TrimSpace(name)]
	return r, ok
}

// Mask returns the mask covering every bit of the representation
func (r Repr) Mask() uint64 {
	if r.Bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << r.Bits) - 1
}

// evalExpr evaluates a flag value expression into a bit pattern of the given
// representation. An expression is one or more terms joined by '|'; a term is
// an integer literal (any Go base prefix, '_' separators allowed), a
// previously declared flag name, or "<term> << <n>".
func evalExpr(expr string, repr Repr, lookup func(name string) (uint64, bool)) (uint64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, fmt.Errorf("empty value expression")
	}

	var result uint64
	for _, term := range strings.Split(expr, "|") {
		v, err := evalTerm(strings.TrimSpace(term), repr, lookup)
		if err != nil {
			return 0, fmt.Errorf("invalid expression %q: %w", expr, err)
		}
		result |= v
	}
	return result, nil
}

func evalTerm(term string, repr Repr, lookup func(name string) (uint64, bool)) (uint64, error) {
	if term == "" {
		return 0, fmt.Errorf("empty term")
	}

	// Shift
	if lhs, rhs, found := strings.Cut(term, "<<"); found {
		base, err := evalTerm(strings.TrimSpace(lhs), repr, lookup)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(strings.TrimSpace(rhs), 0, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid shift count %q: %w", rhs, err)
		}
		if int(n) >= repr.Bits {
			return 0, fmt.Errorf("%w: shift by %d exceeds %d-bit %s", ErrOverflow, n, repr.Bits, repr.Name)
		}
		signBit := uint64(1) << (repr.Bits - 1)
		if repr.Signed && base&signBit != 0 {
			// Negative base: shift the sign-extended value
			v := int64(base | ^repr.Mask())
			shifted := v << n
			if shifted>>n != v || shifted < -int64(signBit) {
				return 0, fmt.Errorf("%w: %s does not fit %s", ErrOverflow, term, repr.Name)
			}
			return uint64(shifted) & repr.Mask(), nil
		}
		shifted := base << n
		if shifted&^repr.Mask() != 0 || shifted>>n != base {
			return 0, fmt.Errorf("%w: %s does not fit %s", ErrOverflow, term, repr.Name)
		}
		return shifted, nil
	}

	if isIdentStart(rune(term[0])) {
		v, ok := lookup(term)
		if !ok {
			return 0, fmt.Errorf("%w: %q is not declared before use", ErrUnknownFlag, term)
		}
		return v, nil
	}

	return parseLiteral(term, repr)
}

// parseLiteral parses an integer literal as a bit pattern of repr.
// Negative literals are accepted for signed representations only.
func parseLiteral(s string, repr Repr) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		if !repr.Signed {
			return 0, fmt.Errorf("%w: negative literal %q for unsigned %s", ErrOverflow, s, repr.Name)
		}
		i, err := strconv.ParseInt(s, 0, repr.Bits)
		if err != nil {
			return 0, fmt.Errorf("invalid literal %q: %w", s, err)
		}
		return uint64(i) & repr.Mask(), nil
	}

	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid literal %q: %w", s, err)
	}
	if u&^repr.Mask() != 0 {
		return 0, fmt.Errorf("%w: %s does not fit %d-bit %s", ErrOverflow, s, repr.Bits, repr.Name)
	}
	return u, nil
}

// isValidFlagName checks that name is a Go-style identifier
func isValidFlagName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		isDigit := r >= '0' && r <= '9'
		if !(isIdentStart(r) || isDigit) {
			return false
		}
	}
	return true
}

func isIdentStart(r rune) bool {
	isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	return isLetter || r == '_'
}
