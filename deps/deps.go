// Package deps carries the ambient capability set threaded through store
// contexts. A Deps value is an immutable bag of capabilities keyed by
// their declared type; effects read from it, never write.
package deps

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/reduct_ive_go/internal/typeref"
)

var ErrMissingDep = fmt.Errorf("missing dependency")

// Entry is one capability keyed by the type it was provided as.
type Entry struct {
	typ reflect.Type
	val any
}

// Provide keys v under T, which may be an interface type. Providing a
// concrete value under its interface is how capabilities stay swappable.
func Provide[T any](v T) Entry {
	return Entry{typ: typeref.Of[T](), val: v}
}

// Deps is an immutable capability set. The zero value is empty and
// satisfies only empty requirements.
type Deps struct {
	vals map[reflect.Type]any
}

// New builds a capability set from the given entries. A later entry for
// the same key wins.
func New(entries ...Entry) Deps {
	if len(entries) == 0 {
		return Deps{}
	}
	vals := make(map[reflect.Type]any, len(entries))
	for _, e := range entries {
		vals[e.typ] = e.val
	}
	return Deps{vals: vals}
}

// Merge returns the union of both sets. On overlapping keys the right
// side wins. Neither operand is modified.
func (d Deps) Merge(other Deps) Deps {
	if len(other.vals) == 0 {
		return d
	}
	if len(d.vals) == 0 {
		return other
	}
	vals := make(map[reflect.Type]any, len(d.vals)+len(other.vals))
	for k, v := range d.vals {
		vals[k] = v
	}
	for k, v := range other.vals {
		vals[k] = v
	}
	return Deps{vals: vals}
}

// Satisfies reports whether every capability in required is present here.
// This stands in for deps convertibility in result and effect checks: a
// parent absorbs a child's effect only if it already provides everything
// the child requires.
func (d Deps) Satisfies(required Deps) bool {
	for k := range required.vals {
		if _, ok := d.vals[k]; !ok {
			return false
		}
	}
	return true
}

// Empty reports whether the set holds no capabilities.
func (d Deps) Empty() bool { return len(d.vals) == 0 }

// Size returns the number of capabilities.
func (d Deps) Size() int { return len(d.vals) }

// Get returns the capability keyed by T.
func Get[T any](d Deps) (T, error) {
	var zero T
	raw, ok := d.vals[typeref.Of[T]()]
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrMissingDep, typeref.Of[T]())
	}
	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds unexpected type %T", ErrMissingDep, typeref.Of[T](), raw)
	}
	return val, nil
}

// MustGet is the panic-on-failure variant of Get. Use when the owning
// context is known to carry the capability.
func MustGet[T any](d Deps) T {
	val, err := Get[T](d)
	if err != nil {
		panic(err)
	}
	return val
}
