package fragment

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Fragment is an immutable key-value configuration fragment.
//
// Fragment is a map type so literals stay readable, but no function in this
// package writes to a Fragment it did not create.
type Fragment map[string]any

// Of builds a Fragment from alternating key/value arguments.
// It panics on an odd argument count or a non-string key; both are
// programming errors in static preset definitions.
func Of(kv ...any) Fragment {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("fragment.Of: odd number of arguments (%d)", len(kv)))
	}

	f := make(Fragment, len(kv)/2)

	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("fragment.Of: key at position %d is %T, not string", i, kv[i]))
		}

		f[key] = kv[i+1]
	}

	return f
}

// Merge returns a new fragment holding left overridden by right.
// A nil operand behaves like an empty fragment.
func Merge(left, right Fragment) Fragment {
	out := left.Clone()
	if out == nil {
		out = Fragment{}
	}

	for key, rv := range right {
		if rf, ok := asFragment(rv); ok {
			if lf, ok := asFragment(out[key]); ok {
				out[key] = Merge(lf, rf)
				continue
			}
		}

		out[key] = cloneValue(rv)
	}

	return out
}

// MergeAll folds Merge over frags from left to right.
func MergeAll(frags ...Fragment) Fragment {
	out := Fragment{}
	for _, f := range frags {
		out = Merge(out, f)
	}

	return out
}

// Add is the chaining form of Merge: a.Add(b).Add(c).
func (f Fragment) Add(other Fragment) Fragment {
	return Merge(f, other)
}

// With returns a copy of f with key set to value.
func (f Fragment) With(key string, value any) Fragment {
	out := f.Clone()
	if out == nil {
		out = Fragment{}
	}

	out[key] = cloneValue(value)

	return out
}

// Clone returns a deep copy of f. Clone of a nil fragment is nil.
func (f Fragment) Clone() Fragment {
	if f == nil {
		return nil
	}

	out := make(Fragment, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}

	return out
}

// Lookup reads a nested value by following path through child fragments.
func (f Fragment) Lookup(path ...string) (any, bool) {
	var cur any = f

	for _, key := range path {
		cf, ok := asFragment(cur)
		if !ok {
			return nil, false
		}

		cur, ok = cf[key]
		if !ok {
			return nil, false
		}
	}

	return cur, true
}

// StringAt reads a nested string value, returning "" when absent or not a string.
func (f Fragment) StringAt(path ...string) string {
	v, ok := f.Lookup(path...)
	if !ok {
		return ""
	}

	s, _ := v.(string)

	return s
}

// Keys returns the top-level keys in sorted order.
func (f Fragment) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

// IsEmpty reports whether f has no keys.
func (f Fragment) IsEmpty() bool {
	return len(f) == 0
}

func asFragment(v any) (Fragment, bool) {
	switch t := v.(type) {
	case Fragment:
		return t, true
	case map[string]any:
		return Fragment(t), true
	default:
		return nil, false
	}
}

// cloneValue deep-copies the container types fragments are built from.
// Other values are primitives and are returned as is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case Fragment:
		return t.Clone()
	case map[string]any:
		return Fragment(t).Clone()
	case []any:
		if t == nil {
			return t
		}

		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}

		return out
	case []Fragment:
		if t == nil {
			return t
		}

		out := make([]Fragment, len(t))
		for i, e := range t {
			out[i] = e.Clone()
		}

		return out
	case []string:
		return slices.Clone(t)
	case []float64:
		return slices.Clone(t)
	case []int:
		return slices.Clone(t)
	default:
		return cloneReflect(v)
	}
}

// cloneReflect copies lists and maps of any other element type, cloning
// each element through cloneValue.
func cloneReflect(v any) any {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}

		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			if e, ok := cloneElem(rv.Index(i), rv.Type().Elem()); ok {
				out.Index(i).Set(e)
			}
		}

		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}

		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			e, ok := cloneElem(iter.Value(), rv.Type().Elem())
			if !ok {
				e = reflect.Zero(rv.Type().Elem())
			}

			out.SetMapIndex(iter.Key(), e)
		}

		return out.Interface()
	default:
		return v
	}
}

// cloneElem clones e and converts the copy back to typ. It reports false
// for nil interface elements, which stay zero.
func cloneElem(e reflect.Value, typ reflect.Type) (reflect.Value, bool) {
	if e.Kind() == reflect.Interface && e.IsNil() {
		return reflect.Value{}, false
	}

	c := reflect.ValueOf(cloneValue(e.Interface()))
	if !c.IsValid() {
		return reflect.Value{}, false
	}

	if c.Type() != typ {
		c = c.Convert(typ)
	}

	return c, true
}
