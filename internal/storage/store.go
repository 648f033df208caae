// Package storage provides object storage backends for the employee bulk
// file and generated certificates.
package storage

import (
	"context"
	"fmt"
	"time"
)

// ContentTypePDF is the content type set on stored certificates.
const ContentTypePDF = "application/pdf"

// certificatePrefix is the fixed key prefix for stored certificates.
const certificatePrefix = "certificates/"

// keyTimestampLayout gives second-level resolution, which is what guarantees
// key uniqueness across repeated submissions by the same employee.
const keyTimestampLayout = "20060102_150405"

// ObjectStore reads and writes opaque objects by key. PresignGet is an
// optional capability: backends without presigned URL support return a
// stable key-based reference instead.
type ObjectStore interface {
	// Get fetches the object stored under key.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores body under key, overwriting any existing object.
	Put(ctx context.Context, key string, body []byte, contentType string) error

	// PresignGet returns a retrievable reference to the object under key,
	// valid for at least the given duration where the backend supports
	// time-limited access.
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

// CertificateKey derives the storage key for a certificate:
// certificates/{employee_id}_{timestamp}.pdf.
func CertificateKey(employeeID string, t time.Time) string {
	return fmt.Sprintf("%s%s_%s.pdf", certificatePrefix, employeeID, t.Format(keyTimestampLayout))
}
