// FILE: lixenwraith/bitflags/format_test.go
package bitflags

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		value    fmt.Stringer
		expected string
	}{
		{"Empty", Empty[uint8, testDef](), "(empty)"},
		{"Single", flagA, "A"},
		{"Pair", flagA.Union(flagB), "A | B"},
		{"DeclarationOrder", flagC.Union(flagA), "A | C"},
		{"CompositeListedWithParts", flagABC, "A | B | C | ABC"},
		{"Residual", FromBitsUnchecked[uint8, testDef](0b1001), "A | 0x8"},
		{"OnlyResidual", FromBitsUnchecked[uint8, testDef](0b1000), "0x8"},
		{"SignedFlags", All[int8, signedDef](), "Low | High"},
		{"SignedResidual", FromBitsUnchecked[int8, signedDef](-1), "Low | High | 0x7e"},
		{"WideFlags", All[uint64, wideDef](), "Bottom | Top"},
		{"ZeroFlagHidden", MustNamed[uint32, zeroDef]("SOME"), "SOME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestFormatVerbs(t *testing.T) {
	ab := flagA.Union(flagB)

	tests := []struct {
		format   string
		expected string
	}{
		{"%v", "A | B"},
		{"%s", "A | B"},
		{"%+v", "A | B"},
		{"%q", `"A | B"`},
		{"%9s", "    A | B"},
		{"%-7v|", "A | B  |"},
		{"%d", "3"},
		{"%b", "11"},
		{"%08b", "00000011"},
		{"%o", "3"},
		{"%O", "0o3"},
		{"%x", "3"},
		{"%#x", "0x3"},
		{"%#X", "0X3"},
		{"%t", "%!t(A | B)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.expected, fmt.Sprintf(tt.format, ab))
		})
	}

	t.Run("NestedInStruct", func(t *testing.T) {
		v := struct{ Opts testFlags }{Opts: flagC}
		assert.Equal(t, "{C}", fmt.Sprintf("%v", v))
	})

	t.Run("SignedRawBits", func(t *testing.T) {
		high := MustNamed[int8, signedDef]("High")
		assert.Equal(t, "-128", fmt.Sprintf("%d", high))
		assert.Equal(t, "80", fmt.Sprintf("%x", high))
		assert.Equal(t, "0X81", fmt.Sprintf("%#X", All[int8, signedDef]()))
		assert.Equal(t, "10000000", fmt.Sprintf("%b", high))
		assert.Equal(t, "200", fmt.Sprintf("%o", high))
	})
}

func TestParse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tests := []struct {
			input    string
			expected testFlags
		}{
			{"", Empty[uint8, testDef]()},
			{"   ", Empty[uint8, testDef]()},
			{"(empty)", Empty[uint8, testDef]()},
			{"A", flagA},
			{"A | B", flagA.Union(flagB)},
			{"  C|A  ", flagA.Union(flagC)},
			{"ABC", flagABC},
			{"A | 0x2", flagA.Union(flagB)},
			{"0b101", flagA.Union(flagC)},
			{"4", flagC},
			{"0", Empty[uint8, testDef]()},
			{"A | A", flagA},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				s, err := Parse[uint8, testDef](tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, s)
			})
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		tests := []struct {
			input   string
			target  error
			message string
		}{
			{"D", ErrUnknownFlag, `unknown flag: "D"`},
			{"A | a", ErrUnknownFlag, `"a"`},
			{"0x8", ErrUnrecognizedBits, "0x8"},
			{"A | 0x100", ErrOverflow, "does not fit"},
			{"-1", ErrOverflow, "negative literal"},
			{"A |", nil, "empty flag"},
			{"| B", nil, "empty flag"},
			{"$", nil, "invalid literal"},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				_, err := Parse[uint8, testDef](tt.input)
				require.Error(t, err)
				if tt.target != nil {
					assert.ErrorIs(t, err, tt.target)
				}
				assert.Contains(t, err.Error(), tt.message)
			})
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, v := range everyTestValue() {
			parsed, err := Parse[uint8, testDef](v.String())
			require.NoError(t, err)
			assert.Equal(t, v, parsed, "round trip of %s", v)
		}
	})

	t.Run("ResidualRejected", func(t *testing.T) {
		text := FromBitsUnchecked[uint8, testDef](0b1001).String()
		_, err := Parse[uint8, testDef](text)
		assert.ErrorIs(t, err, ErrUnrecognizedBits)
	})

	t.Run("Signed", func(t *testing.T) {
		s, err := Parse[int8, signedDef]("-128")
		require.NoError(t, err)
		assert.Equal(t, MustNamed[int8, signedDef]("High"), s)

		s, err = Parse[int8, signedDef]("Low | High")
		require.NoError(t, err)
		assert.True(t, s.IsAll())

		s, err = Parse[int8, signedDef]("0x80")
		require.NoError(t, err)
		assert.Equal(t, int8(-128), s.Bits())
	})

	t.Run("Wide", func(t *testing.T) {
		s, err := Parse[uint64, wideDef]("0x8000000000000000 | Bottom")
		require.NoError(t, err)
		assert.True(t, s.IsAll())
	})

	t.Run("MustParse", func(t *testing.T) {
		assert.Equal(t, flagB, MustParse[uint8, testDef]("B"))
		assert.Panics(t, func() { MustParse[uint8, testDef]("D") })
	})
}
