package directory

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/clock"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/storage"
	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// DefaultTTL is how long a loaded snapshot stays valid without a reload.
const DefaultTTL = 300 * time.Second

// Snapshot is one complete load of the employee directory. It is replaced
// as a whole unit and never mutated after construction.
type Snapshot struct {
	employees map[string]types.EmployeeRecord
	LoadedAt  time.Time
}

// Len returns the number of employees in the snapshot.
func (s *Snapshot) Len() int { return len(s.employees) }

// Cache serves employee lookups from the current snapshot, reloading from
// the bulk source when the snapshot is older than the TTL. Concurrent
// lookups that both observe an expired snapshot may each reload; the last
// swap wins and both see complete data.
type Cache struct {
	source storage.ObjectStore
	key    string
	ttl    time.Duration
	clock  clock.Clock
	log    *logrus.Entry

	mu       sync.RWMutex
	snapshot *Snapshot
}

// NewCache creates a directory cache reading the bulk CSV from the given
// store key. A ttl of zero uses DefaultTTL.
func NewCache(source storage.ObjectStore, key string, ttl time.Duration, clk clock.Clock, logger *logrus.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Cache{
		source: source,
		key:    key,
		ttl:    ttl,
		clock:  clk,
		log:    logger.WithField("component", "directory"),
	}
}

// Lookup returns the employee record for id. A stale or missing snapshot
// triggers a full reload first; reload failures return a *RetrievalError
// and an absent id returns a *NotFoundError.
func (c *Cache) Lookup(ctx context.Context, id string) (types.EmployeeRecord, error) {
	snap := c.current()
	now := c.clock.Now()

	if snap == nil || now.Sub(snap.LoadedAt) >= c.ttl {
		reloaded, err := c.reload(ctx, now)
		if err != nil {
			return types.EmployeeRecord{}, &RetrievalError{Cause: err}
		}
		snap = reloaded
	}

	rec, ok := snap.employees[id]
	if !ok {
		return types.EmployeeRecord{}, &NotFoundError{EmployeeID: id}
	}
	return rec, nil
}

// current returns the snapshot pointer under a read lock.
func (c *Cache) current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// reload fetches and parses the bulk CSV, then swaps in the new snapshot.
func (c *Cache) reload(ctx context.Context, now time.Time) (*Snapshot, error) {
	data, err := c.source.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}

	employees, err := parseDirectory(data)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{employees: employees, LoadedAt: now}

	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()

	c.log.WithField("employees", len(employees)).Info("employee directory loaded")
	return snap, nil
}
