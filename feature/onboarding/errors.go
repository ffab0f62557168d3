package onboarding

import "fmt"

// MalformedRowError marks a row that is missing a value for a mandatory
// field. The row is skipped and reported; the rest of the sheet continues.
type MalformedRowError struct {
	Field  string
	Detail string
}

func (e *MalformedRowError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("malformed row: field %s: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("malformed row: missing mandatory field %s", e.Field)
}

// UnresolvedReferenceError marks a row referencing a parent natural key that
// has not been registered. This is what enforces the load ordering: a child
// sheet processed before its parent fails fast instead of writing an invalid
// foreign key.
type UnresolvedReferenceError struct {
	Entity Entity
	Key    Key
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference: no %s registered for key %q", e.Entity, string(e.Key))
}

// ConstraintViolationError marks a write the store rejected. It is surfaced
// as a per-row failure, not a whole-load abort.
type ConstraintViolationError struct {
	Table string
	Err   error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation on %s: %v", e.Table, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}
