package ticket

import (
	"context"
	"time"
)

// SnapshotRepository loads the read-only snapshots consumed by the export
// pipeline. Implementations never expose mutable entity state.
type SnapshotRepository interface {
	// FindTransaction loads one transaction snapshot by id. Returns
	// ErrTransactionNotFound when no row exists.
	FindTransaction(ctx context.Context, id int64) (*TransactionSnapshot, error)

	// FindGlobalConfig loads the single business configuration snapshot.
	// A missing configuration row yields an empty snapshot, not an error.
	FindGlobalConfig(ctx context.Context) (*ConfigSnapshot, error)

	// ListTransactionsByDay returns the snapshots of every transaction whose
	// moment falls within the calendar day of dayStart, ordered by moment.
	ListTransactionsByDay(ctx context.Context, dayStart time.Time) ([]TransactionSnapshot, error)
}
