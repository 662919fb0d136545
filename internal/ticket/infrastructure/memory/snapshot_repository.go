package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
)

// SnapshotRepository is an in-memory snapshot source for tests.
type SnapshotRepository struct {
	mu     sync.RWMutex
	txs    map[int64]ticket.TransactionSnapshot
	config ticket.ConfigSnapshot
}

// NewSnapshotRepository constructs an empty repository.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{txs: make(map[int64]ticket.TransactionSnapshot)}
}

// PutTransaction stores a snapshot under its id. Snapshots without an id are
// ignored.
func (r *SnapshotRepository) PutTransaction(snapshot ticket.TransactionSnapshot) {
	if snapshot.ID == nil {
		return
	}
	r.mu.Lock()
	r.txs[*snapshot.ID] = snapshot
	r.mu.Unlock()
}

// SetGlobalConfig stores the configuration snapshot.
func (r *SnapshotRepository) SetGlobalConfig(cfg ticket.ConfigSnapshot) {
	r.mu.Lock()
	r.config = cfg
	r.mu.Unlock()
}

// FindTransaction loads one snapshot.
func (r *SnapshotRepository) FindTransaction(ctx context.Context, id int64) (*ticket.TransactionSnapshot, error) {
	_ = ctx
	r.mu.RLock()
	snapshot, ok := r.txs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ticket.ErrTransactionNotFound
	}
	return &snapshot, nil
}

// FindGlobalConfig loads the configuration snapshot.
func (r *SnapshotRepository) FindGlobalConfig(ctx context.Context) (*ticket.ConfigSnapshot, error) {
	_ = ctx
	r.mu.RLock()
	cfg := r.config
	r.mu.RUnlock()
	return &cfg, nil
}

// ListTransactionsByDay returns the stored snapshots for one calendar day,
// ordered by moment then id.
func (r *SnapshotRepository) ListTransactionsByDay(ctx context.Context, dayStart time.Time) ([]ticket.TransactionSnapshot, error) {
	_ = ctx
	from := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, dayStart.Location())
	to := from.AddDate(0, 0, 1)

	r.mu.RLock()
	var snapshots []ticket.TransactionSnapshot
	for _, snapshot := range r.txs {
		if snapshot.Moment == nil {
			continue
		}
		if snapshot.Moment.Before(from) || !snapshot.Moment.Before(to) {
			continue
		}
		snapshots = append(snapshots, snapshot)
	}
	r.mu.RUnlock()

	sort.Slice(snapshots, func(i, j int) bool {
		if snapshots[i].Moment.Equal(*snapshots[j].Moment) {
			return deref(snapshots[i].ID) < deref(snapshots[j].ID)
		}
		return snapshots[i].Moment.Before(*snapshots[j].Moment)
	})
	return snapshots, nil
}

func deref(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
