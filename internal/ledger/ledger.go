// Package ledger provides durable pledge record storage.
package ledger

import (
	"context"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// Ledger appends one durable record per successful pledge submission.
// Records are write-once; resubmission by the same employee creates a
// second independent record.
type Ledger interface {
	// Record appends a pledge record.
	Record(ctx context.Context, rec types.PledgeRecord) error

	// Get returns the record with the given pledge id, or nil if absent.
	Get(ctx context.Context, pledgeID string) (*types.PledgeRecord, error)
}
