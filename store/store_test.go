package store_test

// Shared fixtures: a small document domain with a unified action
// interface, two concrete actions under it, and one foreign action.

type docAction interface{ isDocAction() }

type saveDoc struct{ path string }

type loadDoc struct{ path string }

func (saveDoc) isDocAction() {}
func (loadDoc) isDocAction() {}

// auditEvent is outside the document domain; lifting it in requires an
// explicit converter.
type auditEvent struct{ msg string }
