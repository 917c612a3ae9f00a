package resident

import (
	"context"
	"errors"
	"log/slog"
)

// Common errors
var (
	ErrResidentNotFound = errors.New("resident not found")
	ErrInvalidRole      = errors.New("unknown billing role")
	ErrNegativeWeight   = errors.New("rent weight cannot be negative")
)

// defaultRoster is the fixed roster seeded into an empty store. Weights and
// billing roles mirror the household this system was built for: the first
// entry is the collecting administrator and covers the parking spot, the
// second fronts the house-supplies purchases.
var defaultRoster = []struct {
	name   string
	weight float64
	roles  []Role
}{
	{"Eduardo", 1.0, []Role{RoleParkingPayer}},
	{"Menon", 1.0, []Role{RoleSuppliesReimbursed}},
	{"Lucas", 1.0, nil},
	{"Camila", 0.65, nil},
	{"Júlia", 0.65, nil},
	{"Saulo", 0.60, nil},
}

// Service handles resident business logic
type Service struct {
	repo *Repository
}

// NewService creates a new resident service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new resident
func (s *Service) Create(ctx context.Context, req *CreateResidentRequest) (*Resident, error) {
	if req.RentWeight < 0 {
		return nil, ErrNegativeWeight
	}
	roles, err := parseRoles(req.Roles)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.Name, req.Index, req.RentWeight, roles)
}

// GetByID retrieves a resident by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*Resident, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrResidentNotFound
	}
	return res, nil
}

// List retrieves all residents in display order
func (s *Service) List(ctx context.Context) ([]*Resident, error) {
	return s.repo.List(ctx)
}

// Update modifies an existing resident
func (s *Service) Update(ctx context.Context, id string, req *UpdateResidentRequest) (*Resident, error) {
	if req.RentWeight != nil && *req.RentWeight < 0 {
		return nil, ErrNegativeWeight
	}
	roles, err := parseRoles(req.Roles)
	if err != nil {
		return nil, err
	}

	res, err := s.repo.Update(ctx, id, req, roles)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrResidentNotFound
	}
	return res, nil
}

// EnsureDefaults seeds the fixed default roster when the store is empty.
// It is safe to call on every startup: the roster is only inserted once.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	slog.Info("No residents found, seeding default roster", "size", len(defaultRoster))
	for i, entry := range defaultRoster {
		if _, err := s.repo.Create(ctx, entry.name, i, entry.weight, entry.roles); err != nil {
			return err
		}
	}
	return nil
}
