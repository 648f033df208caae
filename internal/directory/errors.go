// Package directory loads the employee directory from the bulk source and
// serves point lookups from a TTL-cached snapshot.
package directory

import "fmt"

// NotFoundError indicates the employee id is absent from the current
// snapshot. This is a client-correctable condition, distinct from a
// failed reload.
type NotFoundError struct {
	EmployeeID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee %s not found in directory", e.EmployeeID)
}

// RetrievalError indicates the bulk source was unreachable or its contents
// could not be parsed. Every reload failure surfaces to the caller; the
// previous snapshot is not reused as a stale fallback.
type RetrievalError struct {
	Cause error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to load employee directory: %v", e.Cause)
}

func (e *RetrievalError) Unwrap() error {
	return e.Cause
}
