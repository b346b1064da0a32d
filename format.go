// FILE: lixenwraith/bitflags/format.go
package bitflags

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

const (
	// emptyMarker is the text form of a set with no bits
	emptyMarker = "(empty)"
	separator   = " | "
)

// String renders the declared flags contained in s, in declaration order,
// joined by " | ". Bits not covered by a printed flag follow as a hex
// literal. A set with no bits renders as "(empty)".
func (s Set[T, D]) String() string {
	if s.bits == 0 {
		return emptyMarker
	}

	var sb strings.Builder
	var covered T
	for name, f := range s.Iter() {
		if sb.Len() > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(name)
		covered |= f.bits
	}

	if rest := s.bits &^ covered; rest != 0 {
		if sb.Len() > 0 {
			sb.WriteString(separator)
		}
		fmt.Fprintf(&sb, "%#x", toUint64(rest))
	}
	return sb.String()
}

// Format implements fmt.Formatter. %v, %s and %q use String; the numeric
// verbs %b, %o, %O, %x and %X print the bits as an unsigned value of T's
// width, so signed sets show their two's complement pattern. %d prints the
// integer value.
func (s Set[T, D]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'x', 'X':
		fmt.Fprintf(f, fmt.FormatString(f, verb), toUint64(s.bits))
	case 'd':
		fmt.Fprintf(f, fmt.FormatString(f, verb), s.bits)
	case 'v', 's', 'q':
		if verb == 'v' {
			verb = 's'
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), s.String())
	default:
		fmt.Fprintf(f, "%%!%c(%s)", verb, s.String())
	}
}

// Parse reads the text form produced by String: flag names and integer
// literals joined by '|'. Blank text and "(empty)" give the empty set.
// The result must lie within the all-flags mask.
func Parse[T constraints.Integer, D Definition[T]](text string) (Set[T, D], error) {
	text = strings.TrimSpace(text)
	if text == "" || text == emptyMarker {
		return Set[T, D]{}, nil
	}

	t := tableOf[T, D]()
	repr := reprOf[T]()
	var bits T
	for _, tok := range strings.Split(text, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Set[T, D]{}, fmt.Errorf("empty flag in %q", text)
		}

		if isIdentStart(rune(tok[0])) {
			v, ok := t.Lookup(tok)
			if !ok {
				return Set[T, D]{}, fmt.Errorf("%w: %q", ErrUnknownFlag, tok)
			}
			bits |= v
			continue
		}

		v, err := parseLiteral(tok, repr)
		if err != nil {
			return Set[T, D]{}, err
		}
		bits |= T(v)
	}

	return FromBits[T, D](bits)
}

// MustParse is like Parse but panics on error
func MustParse[T constraints.Integer, D Definition[T]](text string) Set[T, D] {
	s, err := Parse[T, D](text)
	if err != nil {
		panic(fmt.Sprintf("bitflags: %v", err))
	}
	return s
}
