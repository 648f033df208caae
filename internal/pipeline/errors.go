// Package pipeline composes directory lookup, certificate rendering,
// artifact storage and ledger writes into the pledge submission flow.
package pipeline

import "fmt"

// ValidationError indicates a client-correctable problem with the request.
// The pipeline short-circuits before any lookup is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}

// PersistenceError wraps an artifact store or ledger write failure. The
// pipeline absorbs these: the certificate has already been generated, so
// the failure is logged without changing the response.
type PersistenceError struct {
	Op    string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
