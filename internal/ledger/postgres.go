package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sagar-Tachtode/fraud-awareness-pledge-system/internal/types"
)

// PostgresLedger stores pledge records in a PostgreSQL table.
type PostgresLedger struct {
	pool  *pgxpool.Pool
	table string
}

// Connect establishes a connection pool and returns a ledger writing to the
// given table.
func Connect(ctx context.Context, databaseURL, table string) (*PostgresLedger, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresLedger{pool: pool, table: table}, nil
}

// Close closes the connection pool.
func (l *PostgresLedger) Close() {
	if l.pool != nil {
		l.pool.Close()
	}
}

// Migrate creates the pledges table if it does not exist.
func (l *PostgresLedger) Migrate(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			pledge_id       UUID PRIMARY KEY,
			employee_id     TEXT NOT NULL,
			employee_name   TEXT NOT NULL,
			department      TEXT NOT NULL DEFAULT '',
			designation     TEXT NOT NULL DEFAULT '',
			pledge_date     TIMESTAMPTZ NOT NULL,
			status          TEXT NOT NULL,
			certificate_key TEXT NOT NULL DEFAULT ''
		)`, l.ident()))
	if err != nil {
		return fmt.Errorf("failed to create %s table: %w", l.table, err)
	}
	return nil
}

// Record appends one pledge record.
func (l *PostgresLedger) Record(ctx context.Context, rec types.PledgeRecord) error {
	_, err := l.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (pledge_id, employee_id, employee_name, department, designation, pledge_date, status, certificate_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, l.ident()),
		rec.PledgeID, rec.EmployeeID, rec.EmployeeName, rec.Department,
		rec.Designation, rec.PledgeDate, rec.Status, rec.CertificateKey,
	)
	if err != nil {
		return fmt.Errorf("failed to record pledge %s: %w", rec.PledgeID, err)
	}
	return nil
}

// Get returns the record with the given pledge id, or nil if absent.
func (l *PostgresLedger) Get(ctx context.Context, pledgeID string) (*types.PledgeRecord, error) {
	var rec types.PledgeRecord
	err := l.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT pledge_id, employee_id, employee_name, department, designation, pledge_date, status, certificate_key
		FROM %s WHERE pledge_id = $1`, l.ident()),
		pledgeID,
	).Scan(&rec.PledgeID, &rec.EmployeeID, &rec.EmployeeName, &rec.Department,
		&rec.Designation, &rec.PledgeDate, &rec.Status, &rec.CertificateKey)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pledge %s: %w", pledgeID, err)
	}
	return &rec, nil
}

// ident returns the table name as a quoted identifier. The name comes from
// configuration, not request input.
func (l *PostgresLedger) ident() string {
	return pgx.Identifier{l.table}.Sanitize()
}
