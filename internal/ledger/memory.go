package ledger

import (
	"context"
	"sync"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// MemLedger is an in-memory Ledger used in tests.
type MemLedger struct {
	mu      sync.Mutex
	records map[string]types.PledgeRecord

	RecordErr error
}

// NewMemLedger creates an empty in-memory ledger.
func NewMemLedger() *MemLedger {
	return &MemLedger{records: make(map[string]types.PledgeRecord)}
}

// Record appends one pledge record.
func (l *MemLedger) Record(_ context.Context, rec types.PledgeRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.RecordErr != nil {
		return l.RecordErr
	}
	l.records[rec.PledgeID] = rec
	return nil
}

// Get returns the record with the given pledge id, or nil if absent.
func (l *MemLedger) Get(_ context.Context, pledgeID string) (*types.PledgeRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.records[pledgeID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Len returns the number of stored records.
func (l *MemLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
