package resident

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles resident data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new resident repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new resident into the database
func (r *Repository) Create(ctx context.Context, name string, index int, rentWeight float64, roles []Role) (*Resident, error) {
	query := `
		INSERT INTO residents (id, name, sort_index, rent_weight, billing_roles)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, sort_index, rent_weight, billing_roles, created_at
	`

	roleStrings := make([]string, 0, len(roles))
	for _, role := range roles {
		roleStrings = append(roleStrings, string(role))
	}

	res, err := r.scanRow(r.db.QueryRowContext(ctx, query, uuid.NewString(), name, index, rentWeight, pq.Array(roleStrings)))
	if err != nil {
		return nil, fmt.Errorf("failed to create resident: %w", err)
	}
	return res, nil
}

// GetByID retrieves a resident by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Resident, error) {
	query := `
		SELECT id, name, sort_index, rent_weight, billing_roles, created_at
		FROM residents
		WHERE id = $1
	`

	res, err := r.scanRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

// List retrieves all residents ordered by their display index
func (r *Repository) List(ctx context.Context) ([]*Resident, error) {
	query := `
		SELECT id, name, sort_index, rent_weight, billing_roles, created_at
		FROM residents
		ORDER BY sort_index ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	defer rows.Close()

	var residents []*Resident
	for rows.Next() {
		res, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		residents = append(residents, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate residents: %w", err)
	}

	return residents, nil
}

// Update modifies an existing resident and returns the updated row
func (r *Repository) Update(ctx context.Context, id string, req *UpdateResidentRequest, roles []Role) (*Resident, error) {
	query := `
		UPDATE residents
		SET name = COALESCE($2, name),
		    sort_index = COALESCE($3, sort_index),
		    rent_weight = COALESCE($4, rent_weight),
		    billing_roles = COALESCE($5, billing_roles)
		WHERE id = $1
		RETURNING id, name, sort_index, rent_weight, billing_roles, created_at
	`

	var rolesArg interface{}
	if req.Roles != nil {
		roleStrings := make([]string, 0, len(roles))
		for _, role := range roles {
			roleStrings = append(roleStrings, string(role))
		}
		rolesArg = pq.Array(roleStrings)
	}

	res, err := r.scanRow(r.db.QueryRowContext(ctx, query, id, req.Name, req.Index, req.RentWeight, rolesArg))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

// Count returns the number of residents in the store
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM residents`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count residents: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scan(row rowScanner) (*Resident, error) {
	res := &Resident{}
	var roleStrings pq.StringArray
	if err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Index,
		&res.RentWeight,
		&roleStrings,
		&res.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan resident: %w", err)
	}

	for _, s := range roleStrings {
		res.Roles = append(res.Roles, Role(s))
	}
	return res, nil
}

func (r *Repository) scanRow(row *sql.Row) (*Resident, error) {
	res := &Resident{}
	var roleStrings pq.StringArray
	if err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Index,
		&res.RentWeight,
		&roleStrings,
		&res.CreatedAt,
	); err != nil {
		return nil, err
	}

	for _, s := range roleStrings {
		res.Roles = append(res.Roles, Role(s))
	}
	return res, nil
}
