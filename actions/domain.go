package actions

import (
	"reflect"

	"github.com/on-the-ground/reduct_ive_go/internal/typeref"
)

// Domain is the set of action types a dispatch target accepts.
//
// Membership and deduplication are defined by convertibility rather than
// type identity: a type converts into a member if it is that member, or if
// Go considers it assignable to it (a concrete action converts into an
// interface member). The zero Domain is empty and only valid for contexts
// that never dispatch.
type Domain struct {
	members []reflect.Type
}

// TypeOf returns the reflect.Type of A, keeping interface types intact.
func TypeOf[A any]() reflect.Type {
	return typeref.Of[A]()
}

// Of constructs the degenerate single-member domain of A. This is the
// bare-type form single-action APIs interoperate with.
func Of[A any]() Domain {
	return Domain{members: []reflect.Type{TypeOf[A]()}}
}

// FromTypes constructs a domain from explicit member types, dropping exact
// duplicates but performing no convertibility collapse. Dispatchers use it
// so that every registered handler keeps its own member.
func FromTypes(types ...reflect.Type) Domain {
	members := make([]reflect.Type, 0, len(types))
	for _, t := range types {
		if t == nil {
			continue
		}
		dup := false
		for _, m := range members {
			if m == t {
				dup = true
				break
			}
		}
		if !dup {
			members = append(members, t)
		}
	}
	return Domain{members: members}
}

// Join folds Merge over the given domains, left to right.
func Join(ds ...Domain) Domain {
	var acc Domain
	for _, d := range ds {
		acc = Merge(acc, d)
	}
	return acc
}

// Members returns a copy of the member types in domain order.
func (d Domain) Members() []reflect.Type {
	out := make([]reflect.Type, len(d.members))
	copy(out, d.members)
	return out
}

// Size returns the number of member types.
func (d Domain) Size() int { return len(d.members) }

// Empty reports whether the domain has no members.
func (d Domain) Empty() bool { return len(d.members) == 0 }

// Accepts reports whether t converts into some member of the domain.
func (d Domain) Accepts(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for _, m := range d.members {
		if convertsTo(t, m) {
			return true
		}
	}
	return false
}

// Equal reports whether both domains hold the same members in the same
// order. Merge-produced domains compare stably under Equal.
func (d Domain) Equal(other Domain) bool {
	if len(d.members) != len(other.members) {
		return false
	}
	for i, m := range d.members {
		if other.members[i] != m {
			return false
		}
	}
	return true
}

// Merge returns the union of d1 and d2, deduplicated by convertibility.
//
// The fold walks d1's members into an accumulator initialized to d2: a
// member already convertible into some accumulator member is absorbed,
// anything else is appended. The first-seen representative of each
// convertibility class is kept; members already accepted are never removed
// by a later, more general arrival. Merging with an empty domain returns
// the other operand unchanged.
func Merge(d1, d2 Domain) Domain {
	if d1.Empty() {
		return d2
	}
	if d2.Empty() {
		return d1
	}
	acc := make([]reflect.Type, len(d2.members))
	copy(acc, d2.members)
	for _, x := range d1.members {
		absorbed := false
		for _, t := range acc {
			if convertsTo(x, t) {
				absorbed = true
				break
			}
		}
		if !absorbed {
			acc = append(acc, x)
		}
	}
	return Domain{members: acc}
}

// Compatible reports whether every member of from converts, optionally
// through one of the given converters, into some member of to. This is the
// check behind context narrowing and result absorption.
func Compatible(from, to Domain, convs ...Converter) bool {
	for _, x := range from.members {
		if _, ok := to.CandidateFor(x, convs...); !ok {
			return false
		}
	}
	return true
}

// Candidate binds a source type to the domain member it converts into,
// together with the value translation to apply on the way.
type Candidate struct {
	Target reflect.Type
	Apply  func(any) any
}

// CandidateFor finds the first member of the domain that t, or the result
// of the first matching converter applied to t, converts into. The fold
// order over members decides ties; no tie-break beyond insertion order
// exists.
func (d Domain) CandidateFor(t reflect.Type, convs ...Converter) (Candidate, bool) {
	effective := t
	apply := identity
	for _, c := range convs {
		if convertsTo(t, c.from) {
			effective = c.to
			apply = c.apply
			break
		}
	}
	for _, m := range d.members {
		if convertsTo(effective, m) {
			return Candidate{Target: m, Apply: apply}, true
		}
	}
	return Candidate{}, false
}

func identity(v any) any { return v }

// convertsTo is the convertibility relation of the domain machinery:
// identity, or Go assignability (covers concrete-to-interface widening).
func convertsTo(from, to reflect.Type) bool {
	return from == to || from.AssignableTo(to)
}
