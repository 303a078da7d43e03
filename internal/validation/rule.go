package validation

import (
	"context"
	"encoding/json"
	"math"
	"net/mail"
	"slices"
	"strconv"
	"unicode/utf8"
)

// Required fails for null, absent and blank values.
func Required() Rule {
	return Rule{
		Name:     "required",
		Implicit: true,
		Check: func(_ context.Context, v any) (any, bool, error) {
			return v, v != nil, nil
		},
	}
}

// String requires a JSON string.
func String() Rule {
	return Rule{
		Name: "string",
		Check: func(_ context.Context, v any) (any, bool, error) {
			_, ok := v.(string)
			return v, ok, nil
		},
	}
}

// Integer requires a whole number, given as a JSON number or a numeric string.
// The value is converted to int64.
func Integer() Rule {
	return Rule{
		Name: "integer",
		Check: func(_ context.Context, v any) (any, bool, error) {
			n, ok := toInt64(v)
			return n, ok, nil
		},
	}
}

// Min requires a string of at least n characters or a number of at least n.
func Min(n int) Rule {
	return Rule{
		Name: "min",
		Check: func(_ context.Context, v any) (any, bool, error) {
			size, ok := sizeOf(v)
			return v, ok && size >= int64(n), nil
		},
	}
}

// Max requires a string of at most n characters or a number of at most n.
func Max(n int) Rule {
	return Rule{
		Name: "max",
		Check: func(_ context.Context, v any) (any, bool, error) {
			size, ok := sizeOf(v)
			return v, ok && size <= int64(n), nil
		},
	}
}

// In requires a string equal to one of allowed.
func In(allowed ...string) Rule {
	return Rule{
		Name: "in",
		Check: func(_ context.Context, v any) (any, bool, error) {
			s, ok := v.(string)
			return v, ok && slices.Contains(allowed, s), nil
		},
	}
}

// Email requires a bare address such as user@example.com.
func Email() Rule {
	return Rule{
		Name: "email",
		Check: func(_ context.Context, v any) (any, bool, error) {
			s, ok := v.(string)
			if !ok {
				return v, false, nil
			}
			addr, err := mail.ParseAddress(s)
			return v, err == nil && addr.Address == s, nil
		},
	}
}

// Exists requires exists to report the value as a known record.
func Exists(exists func(ctx context.Context, v any) (bool, error)) Rule {
	return Rule{
		Name: "exists",
		Check: func(ctx context.Context, v any) (any, bool, error) {
			ok, err := exists(ctx, v)
			return v, ok, err
		},
	}
}

// Unique requires taken to report the value as unused.
func Unique(taken func(ctx context.Context, v any) (bool, error)) Rule {
	return Rule{
		Name: "unique",
		Check: func(ctx context.Context, v any) (any, bool, error) {
			used, err := taken(ctx, v)
			return v, !used, err
		},
	}
}

// sizeOf measures strings and unconverted numbers by their text length and
// converted integers by their value.
func sizeOf(v any) (int64, bool) {
	switch t := v.(type) {
	case string:
		return int64(utf8.RuneCountInString(t)), true
	case json.Number:
		return int64(utf8.RuneCountInString(t.String())), true
	case int64:
		return t, true
	}
	return toInt64(v)
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return floatToInt64(t)
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return n, true
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// floatToInt64 accepts whole floats inside the int64 range, so 1.0 and 1e2 pass.
func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}
