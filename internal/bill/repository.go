package bill

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository handles bill data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new bill repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new bill into the database
func (r *Repository) Create(ctx context.Context, b *Bill) (*Bill, error) {
	query := `
		INSERT INTO bills (id, description, budgeted_value, actual_value, type, period_id, is_paid, target_resident_id)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7)
		RETURNING id, description, budgeted_value, actual_value, type, period_id, is_paid, paid_at, target_resident_id, created_at
	`

	created := &Bill{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), b.Description, b.BudgetedValue, b.ActualValue,
		string(b.Type), b.PeriodID, b.TargetResidentID,
	).Scan(
		&created.ID,
		&created.Description,
		&created.BudgetedValue,
		&created.ActualValue,
		&created.Type,
		&created.PeriodID,
		&created.IsPaid,
		&created.PaidAt,
		&created.TargetResidentID,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return created, nil
}

// GetByID retrieves a bill by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Bill, error) {
	query := `
		SELECT id, description, budgeted_value, actual_value, type, period_id, is_paid, paid_at, target_resident_id, created_at
		FROM bills
		WHERE id = $1
	`

	b := &Bill{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID,
		&b.Description,
		&b.BudgetedValue,
		&b.ActualValue,
		&b.Type,
		&b.PeriodID,
		&b.IsPaid,
		&b.PaidAt,
		&b.TargetResidentID,
		&b.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	return b, nil
}

// List retrieves bills ordered by creation time descending. An empty
// periodID returns the full history, which the surplus computation needs.
func (r *Repository) List(ctx context.Context, periodID string) ([]*Bill, error) {
	query := `
		SELECT id, description, budgeted_value, actual_value, type, period_id, is_paid, paid_at, target_resident_id, created_at
		FROM bills
	`
	args := []interface{}{}
	if periodID != "" {
		query += ` WHERE period_id = $1`
		args = append(args, periodID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		b := &Bill{}
		if err := rows.Scan(
			&b.ID,
			&b.Description,
			&b.BudgetedValue,
			&b.ActualValue,
			&b.Type,
			&b.PeriodID,
			&b.IsPaid,
			&b.PaidAt,
			&b.TargetResidentID,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, nil
}

// UpdatePaid sets the vendor-payment flag and timestamp on a bill
func (r *Repository) UpdatePaid(ctx context.Context, id string, isPaid bool, paidAt *time.Time) error {
	query := `
		UPDATE bills
		SET is_paid = $2, paid_at = $3
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, isPaid, paidAt)
	if err != nil {
		return fmt.Errorf("failed to update bill paid status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete removes a bill
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
