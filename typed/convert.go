package typed

import (
	"fmt"
	"math"
	"reflect"

	"github.com/reglet-dev/scriptbox/domain/entities"
)

// TypeMismatchError reports a script value that cannot be converted to the
// requested Go type.
type TypeMismatchError struct {
	Value    any
	Expected string
	Actual   string

	// Source is the evaluated expression or called function, if known.
	Source string
}

func (e *TypeMismatchError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: expected %s, got %s (%v)", e.Source, e.Expected, e.Actual, e.Value)
	}
	return fmt.Sprintf("expected %s, got %s (%v)", e.Expected, e.Actual, e.Value)
}

// ToErrorDetail implements errors.DetailedError.
func (e *TypeMismatchError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "type",
		Code:    e.Expected,
		Details: map[string]any{"actual": e.Actual},
	}
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

// Convert converts an exported script value to T.
//
// Numbers convert between int, int64 and float64 when the value is
// representable; arrays of strings convert to []string. nil converts to the
// zero value of pointer, slice, map, interface and func types only.
func Convert[T any](v any) (T, error) {
	var zero T

	if t, ok := v.(T); ok {
		return t, nil
	}

	target := reflect.TypeFor[T]()
	mismatch := &TypeMismatchError{Value: v, Expected: target.String(), Actual: typeName(v)}

	if v == nil {
		switch target.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func:
			return zero, nil
		default:
			return zero, mismatch
		}
	}

	var (
		out any
		ok  bool
	)
	switch any(zero).(type) {
	case int:
		var n int64
		if n, ok = toInt64(v); ok {
			out = int(n)
		}
	case int64:
		out, ok = toInt64(v)
	case float64:
		out, ok = toFloat64(v)
	case []string:
		out, ok = toStringSlice(v)
	}
	if !ok {
		return zero, mismatch
	}
	return out.(T), nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toStringSlice(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		result = append(result, s)
	}
	return result, true
}
