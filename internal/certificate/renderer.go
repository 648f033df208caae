// Package certificate renders personalized pledge certificates as
// single-page PDF documents.
package certificate

import (
	"context"
	"fmt"
	"time"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// campaignTag prefixes every certificate identifier.
const campaignTag = "FAW"

// issueDateLayout is the human-readable issue date printed on certificates.
const issueDateLayout = "January 2, 2006"

// pledgeClauses are the fixed commitments printed on the vector certificate.
var pledgeClauses = []string{
	"Protecting the company's integrity and reputation",
	"Staying alert and questioning what feels wrong",
	"Always choosing ethics over convenience",
	"Ensuring every customer can trust our promise",
	"Contributing to a culture of honesty and accountability",
}

// Renderer produces a certificate document for an employee. Implementations
// are pure apart from the passed-in timestamp and any template assets they
// fetch: rendering the same employee at the same instant yields the same
// document.
type Renderer interface {
	Render(ctx context.Context, employee types.EmployeeRecord, now time.Time) ([]byte, error)
}

// ID builds the certificate identifier embedded in the document:
// campaign tag, issue date, employee id.
func ID(employeeID string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", campaignTag, now.Format("20060102"), employeeID)
}

// RenderError represents a certificate generation failure. It is fatal for
// the request that triggered it.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
