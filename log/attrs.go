package log

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"
)

// AttrsFromScript converts a value received from a script into slog
// attributes. Objects (map[string]any) become one attribute per key, sorted by
// key, with nested objects rendered as groups. Any other non-nil value becomes
// a single attribute named "value".
func AttrsFromScript(v any) []slog.Attr {
	switch obj := v.(type) {
	case nil:
		return nil
	case map[string]any:
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		attrs := make([]slog.Attr, 0, len(keys))
		for _, k := range keys {
			attrs = append(attrs, slog.Attr{Key: k, Value: ValueFromScript(obj[k])})
		}
		return attrs
	default:
		return []slog.Attr{{Key: "value", Value: ValueFromScript(v)}}
	}
}

// ValueFromScript converts one exported script value to a slog.Value.
// Integral floats become Int64 since most script runtimes have a single
// number type.
func ValueFromScript(v any) slog.Value {
	switch val := v.(type) {
	case nil:
		return slog.AnyValue(nil)
	case string:
		return slog.StringValue(val)
	case bool:
		return slog.BoolValue(val)
	case int:
		return slog.IntValue(val)
	case int64:
		return slog.Int64Value(val)
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return slog.Int64Value(int64(val))
		}
		return slog.Float64Value(val)
	case time.Time:
		return slog.TimeValue(val)
	case time.Duration:
		return slog.DurationValue(val)
	case error:
		return slog.StringValue(val.Error())
	case map[string]any:
		return slog.GroupValue(AttrsFromScript(val)...)
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			items[i] = fmt.Sprint(ValueFromScript(item).Any())
		}
		return slog.AnyValue(items)
	case slog.LogValuer:
		return val.LogValue().Resolve()
	default:
		return slog.AnyValue(val)
	}
}
