package actions

import "reflect"

// Converter translates actions of one type into another at domain
// boundaries. Converters are supplied at composition time (deriving a
// dispatcher, narrowing a context); they are not part of a Domain.
type Converter struct {
	from  reflect.Type
	to    reflect.Type
	apply func(any) any
}

// As builds a converter from a typed translation function. The declared
// To type is what candidate lookup matches against the target domain.
func As[From, To any](fn func(From) To) Converter {
	return Converter{
		from: TypeOf[From](),
		to:   TypeOf[To](),
		apply: func(v any) any {
			return fn(v.(From))
		},
	}
}

// Apply runs the translation on a value of the converter's source type.
func (c Converter) Apply(v any) any { return c.apply(v) }

// From returns the source type the converter accepts.
func (c Converter) From() reflect.Type { return c.from }

// To returns the result type the converter produces.
func (c Converter) To() reflect.Type { return c.to }
