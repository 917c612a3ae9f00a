package bill

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/eduardomb/contas/internal/period"
)

// Common errors
var (
	ErrBillNotFound      = errors.New("bill not found")
	ErrInvalidBillType   = errors.New("unknown bill type")
	ErrNegativeValue     = errors.New("bill values cannot be negative")
	ErrTargetNotAllowed  = errors.New("target resident only applies to individual bills")
	ErrDescriptionNeeded = errors.New("description is required")
)

// Service handles bill business logic
type Service struct {
	repo *Repository
}

// NewService creates a new bill service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and creates a new bill
func (s *Service) Create(ctx context.Context, req *CreateBillRequest) (*Bill, error) {
	if req.Description == "" {
		return nil, ErrDescriptionNeeded
	}

	billType := Type(req.Type)
	if !billType.Valid() {
		return nil, ErrInvalidBillType
	}

	if _, _, err := period.Parse(req.PeriodID); err != nil {
		return nil, err
	}

	if req.BudgetedValue < 0 {
		return nil, ErrNegativeValue
	}
	actual := req.BudgetedValue
	if req.ActualValue != nil {
		if *req.ActualValue < 0 {
			return nil, ErrNegativeValue
		}
		actual = *req.ActualValue
	}

	if req.TargetResidentID != nil && billType != TypeIndividual {
		return nil, ErrTargetNotAllowed
	}

	return s.repo.Create(ctx, &Bill{
		Description:      req.Description,
		BudgetedValue:    req.BudgetedValue,
		ActualValue:      actual,
		Type:             billType,
		PeriodID:         req.PeriodID,
		TargetResidentID: req.TargetResidentID,
	})
}

// List retrieves bills, optionally filtered to a period
func (s *Service) List(ctx context.Context, periodID string) ([]*Bill, error) {
	if periodID != "" {
		if _, _, err := period.Parse(periodID); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, periodID)
}

// TogglePaid flips the vendor-payment flag on a bill. The current value is
// re-read and the negation written back, so concurrent togglers converge on
// a consistent state instead of both blindly setting true.
func (s *Service) TogglePaid(ctx context.Context, id string) (*Bill, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrBillNotFound
	}

	var paidAt *time.Time
	if !current.IsPaid {
		now := time.Now().UTC()
		paidAt = &now
	}

	if err := s.repo.UpdatePaid(ctx, id, !current.IsPaid, paidAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBillNotFound
		}
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBillNotFound
	}
	return updated, nil
}

// Delete removes a bill
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBillNotFound
		}
		return err
	}
	return nil
}
