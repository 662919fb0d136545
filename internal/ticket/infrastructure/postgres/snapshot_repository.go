package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	ticket "github.com/infoyupay/gang-comisiones-sub002/internal/ticket/domain"
)

// SnapshotRepository is a Postgres implementation of the read-only snapshot
// source feeding the export pipeline.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository constructs a repository.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// FindTransaction loads one transaction snapshot, joining the live concept
// and cashier rows so the formatter's fallback chain has both sources.
func (r *SnapshotRepository) FindTransaction(ctx context.Context, id int64) (*ticket.TransactionSnapshot, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("snapshot repo: nil db")
	}

	var (
		txID        sql.NullInt64
		moment      sql.NullTime
		conceptName sql.NullString
		liveConcept sql.NullString
		amount      sql.NullFloat64
		commission  sql.NullFloat64
		username    sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
SELECT t.id, t.moment, t.concept_name, c.name, t.amount, t.commission, u.username
FROM transactions t
LEFT JOIN concepts c ON c.id = t.concept_id
LEFT JOIN users u ON u.id = t.cashier_id
WHERE t.id = $1`, id).Scan(&txID, &moment, &conceptName, &liveConcept, &amount, &commission, &username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ticket.ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	snapshot := &ticket.TransactionSnapshot{ConceptName: conceptName.String}
	if txID.Valid {
		snapshot.ID = &txID.Int64
	}
	if moment.Valid {
		local := moment.Time
		snapshot.Moment = &local
	}
	if liveConcept.Valid {
		snapshot.Concept = &ticket.ConceptRef{Name: liveConcept.String}
	}
	if amount.Valid {
		snapshot.Amount = &amount.Float64
	}
	if commission.Valid {
		snapshot.Commission = &commission.Float64
	}
	if username.Valid {
		snapshot.Cashier = &ticket.CashierRef{Username: username.String}
	}
	return snapshot, nil
}

// FindGlobalConfig loads the single business configuration row. A missing
// row yields an empty snapshot.
func (r *SnapshotRepository) FindGlobalConfig(ctx context.Context) (*ticket.ConfigSnapshot, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("snapshot repo: nil db")
	}

	var legalName, businessName, address, announcement sql.NullString
	err := r.db.QueryRowContext(ctx, `
SELECT legal_name, business_name, address, announcement
FROM global_config
ORDER BY id
LIMIT 1`).Scan(&legalName, &businessName, &address, &announcement)
	if errors.Is(err, sql.ErrNoRows) {
		return &ticket.ConfigSnapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket.ConfigSnapshot{
		LegalName:    legalName.String,
		BusinessName: businessName.String,
		Address:      address.String,
		Announcement: announcement.String,
	}, nil
}

// ListTransactionsByDay returns every snapshot whose moment falls within the
// calendar day of dayStart, in print order.
func (r *SnapshotRepository) ListTransactionsByDay(ctx context.Context, dayStart time.Time) ([]ticket.TransactionSnapshot, error) {
	if r == nil || r.db == nil {
		return nil, errors.New("snapshot repo: nil db")
	}

	from := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 0, 0, 0, 0, dayStart.Location())
	to := from.AddDate(0, 0, 1)
	rows, err := r.db.QueryContext(ctx, `
SELECT t.id, t.moment, t.concept_name, c.name, t.amount, t.commission, u.username
FROM transactions t
LEFT JOIN concepts c ON c.id = t.concept_id
LEFT JOIN users u ON u.id = t.cashier_id
WHERE t.moment >= $1 AND t.moment < $2
ORDER BY t.moment, t.id`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []ticket.TransactionSnapshot
	for rows.Next() {
		var (
			txID        sql.NullInt64
			moment      sql.NullTime
			conceptName sql.NullString
			liveConcept sql.NullString
			amount      sql.NullFloat64
			commission  sql.NullFloat64
			username    sql.NullString
		)
		if err := rows.Scan(&txID, &moment, &conceptName, &liveConcept, &amount, &commission, &username); err != nil {
			return nil, err
		}
		snapshot := ticket.TransactionSnapshot{ConceptName: conceptName.String}
		if txID.Valid {
			id := txID.Int64
			snapshot.ID = &id
		}
		if moment.Valid {
			at := moment.Time
			snapshot.Moment = &at
		}
		if liveConcept.Valid {
			snapshot.Concept = &ticket.ConceptRef{Name: liveConcept.String}
		}
		if amount.Valid {
			v := amount.Float64
			snapshot.Amount = &v
		}
		if commission.Valid {
			v := commission.Float64
			snapshot.Commission = &v
		}
		if username.Valid {
			snapshot.Cashier = &ticket.CashierRef{Username: username.String}
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}
