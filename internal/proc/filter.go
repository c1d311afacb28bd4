package proc

import (
	"fmt"
	"reflect"
	"time"
)

// Filter selects processes during Controller.Find. It is either an
// ExactMatch or a Predicate; a nil Filter matches every process.
type Filter interface {
	compile() (func(Attributes) bool, error)
}

// ExactMatch includes a process only if every key is an available attribute
// whose value equals the expected one. Numbers compare by value regardless
// of Go kind, so ExactMatch{AttrPID: 42} and ExactMatch{AttrPID: 42.0}
// behave the same; create_time also accepts a time.Time. Command lines
// compare element-wise.
type ExactMatch map[Attr]any

// Predicate includes a process when it returns true.
type Predicate func(Attributes) bool

func (p Predicate) compile() (func(Attributes) bool, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil predicate", ErrInvalidArgument)
	}
	return p, nil
}

func (m ExactMatch) compile() (func(Attributes) bool, error) {
	want := make(map[Attr]any, len(m))
	for key, value := range m {
		norm, ok := normalize(value)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported value %v (%T) for %q", ErrInvalidArgument, value, value, key)
		}
		want[key] = norm
	}
	return func(a Attributes) bool {
		for key, expected := range want {
			got, ok := a.Get(key)
			if !ok {
				return false
			}
			norm, _ := normalize(got)
			if !reflect.DeepEqual(norm, expected) {
				return false
			}
		}
		return true
	}, nil
}

func compileFilter(f Filter) (func(Attributes) bool, error) {
	if f == nil {
		return func(Attributes) bool { return true }, nil
	}
	return f.compile()
}

// normalize maps values onto a small set of comparable representations:
// string, float64, []string.
func normalize(v any) (any, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case []string:
		return append([]string{}, x...), true
	case []any:
		out := make([]string, 0, len(x))
		for _, el := range x {
			s, ok := el.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case time.Time:
		return float64(x.UnixMilli()), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return nil, false
	}
}
