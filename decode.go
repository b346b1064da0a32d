// FILE: lixenwraith/bitflags/decode.go
package bitflags

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// flagDecoder is implemented by *Set of every flag set type
type flagDecoder interface {
	decodeFlags(data any) error
}

var flagDecoderType = reflect.TypeOf((*flagDecoder)(nil)).Elem()

// DecodeHookFunc returns a mapstructure hook that fills any flag set field from
// its text form ("Read | Write"), a list of flag names, or an integer. Integers
// and literals are checked against the all-flags mask.
func DecodeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f == t || !reflect.PointerTo(t).Implements(flagDecoderType) {
			return data, nil
		}

		target := reflect.New(t)
		if err := target.Interface().(flagDecoder).decodeFlags(data); err != nil {
			return nil, fmt.Errorf("cannot decode %T into %s: %w", data, t, err)
		}
		return target.Elem().Interface(), nil
	}
}

// Decode decodes a generic map (as produced by a TOML, YAML or JSON parser)
// into a struct whose fields may be flag sets. Field names come from the tag
// given, "toml" when empty.
func Decode(input any, target any, tagName string) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}
	if tagName == "" {
		tagName = "toml"
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			DecodeHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

func (s *Set[T, D]) decodeFlags(data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case Set[T, D]:
		*s = v
		return nil
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	case []string:
		var out Set[T, D]
		for _, text := range v {
			p, err := Parse[T, D](text)
			if err != nil {
				return err
			}
			out.Insert(p)
		}
		*s = out
		return nil
	case []any:
		var out Set[T, D]
		for _, item := range v {
			var p Set[T, D]
			if err := p.decodeFlags(item); err != nil {
				return err
			}
			out.Insert(p)
		}
		*s = out
		return nil
	}

	literal, err := numericLiteral(data)
	if err != nil {
		return err
	}
	raw, err := parseLiteral(literal, reprOf[T]())
	if err != nil {
		return err
	}
	p, err := FromBits[T, D](T(raw))
	if err != nil {
		return err
	}
	*s = p
	return nil
}

// numericLiteral formats an integer-valued number as a decimal literal
func numericLiteral(data any) (string, error) {
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v is not an integer", ErrOverflow, f)
		}
		if f < -(1<<63) || f >= 1<<64 {
			return "", fmt.Errorf("%w: %v exceeds 64 bits", ErrOverflow, f)
		}
		// Non-negative values keep bit 63 for unsigned 64-bit sets
		if f >= 0 {
			return strconv.FormatUint(uint64(f), 10), nil
		}
		return strconv.FormatInt(int64(f), 10), nil
	}
	return "", fmt.Errorf("unsupported flag set source %T", data)
}
