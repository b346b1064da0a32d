// FILE: lixenwraith/bitflags/decode_test.go
package bitflags

import (
	"reflect"
	"testing"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodedConfig struct {
	Name    string                   `toml:"name" yaml:"title"`
	Opts    testFlags                `toml:"opts" yaml:"options"`
	Extra   *testFlags               `toml:"extra"`
	Signed  Set[int8, signedDef]     `toml:"signed"`
	Wide    Set[uint64, wideDef]     `toml:"wide"`
	Timeout time.Duration            `toml:"timeout"`
	Tags    []string                 `toml:"tags"`
	Nested  struct{ Opts testFlags } `toml:"nested"`
}

// TestDecodeFlagSources tests every accepted input shape of a flag set field
func TestDecodeFlagSources(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected testFlags
	}{
		{"TextForm", "A | C", flagA.Union(flagC)},
		{"EmptyMarker", "(empty)", Empty[uint8, testDef]()},
		{"NumericString", "5", flagA.Union(flagC)},
		{"Bytes", []byte("B"), flagB},
		{"StringList", []string{"A | B", "C"}, flagABC},
		{"AnyList", []any{"C", int64(1)}, flagA.Union(flagC)},
		{"EmptyList", []any{}, Empty[uint8, testDef]()},
		{"Int", 2, flagB},
		{"Int64", int64(7), flagABC},
		{"Uint8", uint8(4), flagC},
		{"IntegralFloat", float64(3), flagA.Union(flagB)},
		{"TypedValue", flagB.Union(flagC), flagB.Union(flagC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg decodedConfig
			err := Decode(map[string]any{"opts": tt.input}, &cfg, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Opts)
		})
	}
}

// TestDecodeFloatSources tests integral floats at the edges of 64 bits, as
// produced by generic JSON and YAML maps
func TestDecodeFloatSources(t *testing.T) {
	t.Run("HighBitUnsigned", func(t *testing.T) {
		var cfg decodedConfig
		require.NoError(t, Decode(map[string]any{"wide": float64(1 << 63)}, &cfg, ""))
		assert.Equal(t, MustNamed[uint64, wideDef]("Top"), cfg.Wide)
	})

	t.Run("NegativeSigned", func(t *testing.T) {
		var cfg decodedConfig
		require.NoError(t, Decode(map[string]any{"signed": float64(-128)}, &cfg, ""))
		assert.Equal(t, MustNamed[int8, signedDef]("High"), cfg.Signed)
	})

	t.Run("BeyondSixtyFourBits", func(t *testing.T) {
		var cfg decodedConfig
		err := Decode(map[string]any{"wide": float64(1 << 64)}, &cfg, "")
		require.Error(t, err)
		assert.ErrorContains(t, err, "exceeds 64 bits")
		assert.True(t, cfg.Wide.IsEmpty())
	})
}

// TestDecodeErrors tests that rejected inputs name the cause
func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		message string
	}{
		{"UnknownName", "A | D", "unknown flag"},
		{"UnrecognizedBits", 8, "unrecognized bits"},
		{"NegativeUnsigned", -1, "negative literal"},
		{"Fraction", 1.5, "is not an integer"},
		{"BadListItem", []any{"A", true}, "unsupported flag set source bool"},
		{"Bool", true, "unsupported flag set source bool"},
		{"Map", map[string]any{"A": true}, "unsupported flag set source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg decodedConfig
			err := Decode(map[string]any{"opts": tt.input}, &cfg, "toml")
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.message)
			assert.ErrorContains(t, err, "cannot decode")
		})
	}
}

// TestDecodeMixedConfig tests flag sets alongside the composed hooks
func TestDecodeMixedConfig(t *testing.T) {
	input := map[string]any{
		"name":    "mixed",
		"opts":    []any{"A", "B"},
		"extra":   "C",
		"signed":  "Low | High",
		"wide":    "Top",
		"timeout": "2s",
		"tags":    "x,y",
		"nested":  map[string]any{"Opts": "ABC"},
	}

	var cfg decodedConfig
	require.NoError(t, Decode(input, &cfg, "toml"))

	assert.Equal(t, "mixed", cfg.Name)
	assert.Equal(t, flagA.Union(flagB), cfg.Opts)
	require.NotNil(t, cfg.Extra)
	assert.Equal(t, flagC, *cfg.Extra)
	assert.True(t, cfg.Signed.IsAll())
	assert.Equal(t, uint64(1<<63), cfg.Wide.Bits())
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"x", "y"}, cfg.Tags)
	assert.Equal(t, flagABC, cfg.Nested.Opts)
}

// TestDecodeTagName tests field name resolution through another tag
func TestDecodeTagName(t *testing.T) {
	var cfg decodedConfig
	err := Decode(map[string]any{"title": "yaml", "options": "B"}, &cfg, "yaml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Name)
	assert.Equal(t, flagB, cfg.Opts)
}

// TestDecodeMissingFieldKeepsValue tests that absent keys leave fields alone
func TestDecodeMissingFieldKeepsValue(t *testing.T) {
	cfg := decodedConfig{Opts: flagC}
	require.NoError(t, Decode(map[string]any{"name": "keep", "opts": nil}, &cfg, ""))
	assert.Equal(t, flagC, cfg.Opts)
}

// TestInvalidDecodeTargets tests rejection of non-pointer targets
func TestInvalidDecodeTargets(t *testing.T) {
	var cfg decodedConfig
	assert.ErrorContains(t, Decode(map[string]any{}, cfg, ""), "non-nil pointer")
	assert.ErrorContains(t, Decode(map[string]any{}, (*decodedConfig)(nil), ""), "non-nil pointer")
	assert.ErrorContains(t, Decode(map[string]any{}, nil, ""), "non-nil pointer")
}

// TestDecodeHookStandalone tests the hook in a caller-built decoder
func TestDecodeHookStandalone(t *testing.T) {
	hook := DecodeHookFunc()

	t.Run("ConvertsFlagSet", func(t *testing.T) {
		var target testFlags
		out, err := mapstructure.DecodeHookExec(hook, reflect.ValueOf("A | B"), reflect.ValueOf(&target).Elem())
		require.NoError(t, err)
		assert.Equal(t, flagA.Union(flagB), out)
	})

	t.Run("IgnoresOtherTypes", func(t *testing.T) {
		var target string
		out, err := mapstructure.DecodeHookExec(hook, reflect.ValueOf("A | B"), reflect.ValueOf(&target).Elem())
		require.NoError(t, err)
		assert.Equal(t, "A | B", out)
	})

	t.Run("WithCustomDecoder", func(t *testing.T) {
		var result struct {
			Perm testFlags `json:"perm"`
		}
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:     &result,
			TagName:    "json",
			DecodeHook: hook,
		})
		require.NoError(t, err)
		require.NoError(t, decoder.Decode(map[string]any{"perm": "C | A"}))
		assert.Equal(t, flagA.Union(flagC), result.Perm)
	})
}
