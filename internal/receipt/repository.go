package receipt

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles receipt status persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new receipt repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves the status for a (resident, period) pair, or nil when none
// has been recorded yet
func (r *Repository) Get(ctx context.Context, residentID, periodID string) (*Status, error) {
	query := `
		SELECT resident_id, period_id, received, received_at
		FROM receipt_statuses
		WHERE resident_id = $1 AND period_id = $2
	`

	st := &Status{}
	err := r.db.QueryRowContext(ctx, query, residentID, periodID).Scan(
		&st.ResidentID,
		&st.PeriodID,
		&st.Received,
		&st.ReceivedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get receipt status: %w", err)
	}

	return st, nil
}

// List retrieves all receipt statuses across every period
func (r *Repository) List(ctx context.Context) ([]*Status, error) {
	query := `
		SELECT resident_id, period_id, received, received_at
		FROM receipt_statuses
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipt statuses: %w", err)
	}
	defer rows.Close()

	var statuses []*Status
	for rows.Next() {
		st := &Status{}
		if err := rows.Scan(&st.ResidentID, &st.PeriodID, &st.Received, &st.ReceivedAt); err != nil {
			return nil, fmt.Errorf("failed to scan receipt status: %w", err)
		}
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt statuses: %w", err)
	}

	return statuses, nil
}

// Upsert creates or merges the status keyed by (resident, period), so the
// pair never gets duplicate rows no matter how many togglers race.
func (r *Repository) Upsert(ctx context.Context, st Status) error {
	query := `
		INSERT INTO receipt_statuses (resident_id, period_id, received, received_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (resident_id, period_id)
		DO UPDATE SET received = EXCLUDED.received, received_at = EXCLUDED.received_at
	`

	if _, err := r.db.ExecContext(ctx, query, st.ResidentID, st.PeriodID, st.Received, st.ReceivedAt); err != nil {
		return fmt.Errorf("failed to upsert receipt status: %w", err)
	}

	return nil
}
