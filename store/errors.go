package store

import "fmt"

var (
	// ErrOutOfDomain is returned when a dispatched action's type converts
	// into no member of the dispatcher's domain.
	ErrOutOfDomain = fmt.Errorf("action out of domain")

	// ErrNoCandidate is returned when a cross-domain derivation finds a
	// member with no convertible candidate on the source side.
	ErrNoCandidate = fmt.Errorf("no convertible candidate")

	// ErrIncompatibleDomains is returned when an effect's action surface
	// cannot be absorbed by a target domain.
	ErrIncompatibleDomains = fmt.Errorf("incompatible action domains")

	// ErrModelMismatch is returned when a result's model does not convert
	// to the requested model type.
	ErrModelMismatch = fmt.Errorf("model not convertible")

	// ErrDepsUnsatisfied is returned when the available capabilities do
	// not cover what an effect requires.
	ErrDepsUnsatisfied = fmt.Errorf("dependencies unsatisfied")

	// ErrDuplicateHandler is returned when a dispatcher is given two
	// handlers for the same action type.
	ErrDuplicateHandler = fmt.Errorf("duplicate handler")
)
