// FILE: lixenwraith/bitflags/iter_test.go
package bitflags

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIter(t *testing.T) {
	t.Run("DeclarationOrder", func(t *testing.T) {
		var names []string
		var parts []testFlags
		for name, f := range flagC.Union(flagA).Iter() {
			names = append(names, name)
			parts = append(parts, f)
		}
		assert.Equal(t, []string{"A", "C"}, names)
		assert.Equal(t, []testFlags{flagA, flagC}, parts)
	})

	t.Run("CompositeOnlyWhenComplete", func(t *testing.T) {
		assert.Equal(t, []string{"A", "B", "C", "ABC"}, flagABC.Names())
		assert.Equal(t, []string{"A", "B"}, flagA.Union(flagB).Names())
	})

	t.Run("EmptyAndForeign", func(t *testing.T) {
		assert.Empty(t, Empty[uint8, testDef]().Names())
		assert.Empty(t, FromBitsUnchecked[uint8, testDef](0xF8).Names())
	})

	t.Run("EarlyStop", func(t *testing.T) {
		var names []string
		for name := range flagABC.Iter() {
			names = append(names, name)
			if len(names) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"A", "B"}, names)
	})

	t.Run("Reconstructs", func(t *testing.T) {
		for _, v := range everyTestValue() {
			var rebuilt testFlags
			for _, f := range v.Iter() {
				rebuilt.Insert(f)
			}
			assert.Equal(t, v, rebuilt)
		}
	})
}

func TestCollect(t *testing.T) {
	t.Run("Union", func(t *testing.T) {
		values := []testFlags{flagA, flagC, flagA}
		assert.Equal(t, flagA.Union(flagC), Collect(slices.Values(values)))
	})

	t.Run("EmptySequence", func(t *testing.T) {
		assert.Equal(t, Empty[uint8, testDef](), Collect(slices.Values([]testFlags(nil))))
	})

	t.Run("FromIter", func(t *testing.T) {
		var seq iter.Seq[testFlags] = func(yield func(testFlags) bool) {
			for _, f := range flagABC.Iter() {
				if !yield(f) {
					return
				}
			}
		}
		assert.Equal(t, flagABC, Collect(seq))
	})

	t.Run("Extend", func(t *testing.T) {
		s := flagB
		s.Extend(slices.Values([]testFlags{flagC}))
		assert.Equal(t, flagB.Union(flagC), s)

		s.Extend(nil)
		assert.Equal(t, flagB.Union(flagC), s)
	})

	t.Run("Of", func(t *testing.T) {
		assert.Equal(t, Empty[uint8, testDef](), Of[uint8, testDef]())
		assert.Equal(t, flagABC, Of(flagA, flagB, flagC))
	})
}
