package signature

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrNotAssignable is returned when a configuration value cannot be stored in a field or argument.
var ErrNotAssignable = errors.New("value not assignable")

// assign stores value in dst. Values are used as they are; the only representation
// changes allowed are lossless numeric conversions (decoders pick int64, uint64 or
// float64 on their own), named string and bool types, and element-wise slices and maps.
func assign(dst reflect.Value, value any) error {
	if value == nil {
		if !nillable(dst.Kind()) {
			return fmt.Errorf("%w: nil into %s", ErrNotAssignable, dst.Type())
		}

		dst.Set(reflect.Zero(dst.Type()))

		return nil
	}

	src := reflect.ValueOf(value)

	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)

		return nil
	case isNumeric(src.Kind()) && isNumeric(dst.Kind()):
		return assignNumber(dst, src)
	case (src.Kind() == reflect.String || src.Kind() == reflect.Bool) && src.Kind() == dst.Kind():
		dst.Set(src.Convert(dst.Type()))

		return nil
	case src.Kind() == reflect.Slice && dst.Kind() == reflect.Slice:
		return assignSlice(dst, src)
	case src.Kind() == reflect.Map && dst.Kind() == reflect.Map:
		return assignMap(dst, src)
	default:
		return fmt.Errorf("%w: %s into %s", ErrNotAssignable, src.Type(), dst.Type())
	}
}

func assignNumber(dst, src reflect.Value) error {
	var fits bool

	switch {
	case isSigned(src.Kind()):
		fits = intFits(dst, src.Int())
	case isUnsigned(src.Kind()):
		fits = uintFits(dst, src.Uint())
	default:
		fits = floatFits(dst, src.Float())
	}

	if !fits {
		return fmt.Errorf("%w: %v does not fit %s", ErrNotAssignable, src.Interface(), dst.Type())
	}

	dst.Set(src.Convert(dst.Type()))

	return nil
}

// 2^63 and 2^64, the first float64 values outside int64 and uint64.
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = twoTo63 * 2
)

func intFits(dst reflect.Value, value int64) bool {
	switch {
	case isSigned(dst.Kind()):
		return !dst.OverflowInt(value)
	case isUnsigned(dst.Kind()):
		return value >= 0 && !dst.OverflowUint(uint64(value))
	default:
		f := float64(value)

		return f < twoTo63 && int64(f) == value && floatExact(dst, f)
	}
}

func uintFits(dst reflect.Value, value uint64) bool {
	switch {
	case isSigned(dst.Kind()):
		return value <= math.MaxInt64 && !dst.OverflowInt(int64(value))
	case isUnsigned(dst.Kind()):
		return !dst.OverflowUint(value)
	default:
		f := float64(value)

		return f < twoTo64 && uint64(f) == value && floatExact(dst, f)
	}
}

func floatFits(dst reflect.Value, value float64) bool {
	switch {
	case isSigned(dst.Kind()):
		return value == math.Trunc(value) && value >= -twoTo63 && value < twoTo63 &&
			!dst.OverflowInt(int64(value))
	case isUnsigned(dst.Kind()):
		return value == math.Trunc(value) && value >= 0 && value < twoTo64 &&
			!dst.OverflowUint(uint64(value))
	default:
		return floatExact(dst, value)
	}
}

// floatExact reports whether value survives storage in the float destination unchanged.
func floatExact(dst reflect.Value, value float64) bool {
	if dst.Kind() != reflect.Float32 || math.IsNaN(value) {
		return true
	}

	return !dst.OverflowFloat(value) && float64(float32(value)) == value
}

func assignSlice(dst, src reflect.Value) error {
	out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())

	for i := range src.Len() {
		err := assign(out.Index(i), src.Index(i).Interface())
		if err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}

	dst.Set(out)

	return nil
}

func assignMap(dst, src reflect.Value) error {
	if !src.Type().Key().AssignableTo(dst.Type().Key()) {
		return fmt.Errorf("%w: %s keys into %s", ErrNotAssignable, src.Type().Key(), dst.Type())
	}

	out := reflect.MakeMapWithSize(dst.Type(), src.Len())
	iter := src.MapRange()

	for iter.Next() {
		elem := reflect.New(dst.Type().Elem()).Elem()

		err := assign(elem, iter.Value().Interface())
		if err != nil {
			return fmt.Errorf("key %v: %w", iter.Key().Interface(), err)
		}

		out.SetMapIndex(iter.Key(), elem)
	}

	dst.Set(out)

	return nil
}

func nillable(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive // only nillable kinds matter
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive // only numeric kinds matter
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isUnsigned(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive // only unsigned kinds matter
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isSigned(kind reflect.Kind) bool {
	switch kind { //nolint:exhaustive // only signed kinds matter
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}
