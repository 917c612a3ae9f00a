package receipt

import (
	"context"
	"errors"
	"time"

	"github.com/eduardomb/contas/internal/period"
	"github.com/eduardomb/contas/internal/resident"
)

// ErrUnknownResident is returned when toggling a receipt for a resident that
// does not exist.
var ErrUnknownResident = errors.New("unknown resident")

// Service handles receipt status business logic
type Service struct {
	repo         *Repository
	residentRepo *resident.Repository
}

// NewService creates a new receipt service with repository dependencies injected
func NewService(repo *Repository, residentRepo *resident.Repository) *Service {
	return &Service{repo: repo, residentRepo: residentRepo}
}

// List retrieves all receipt statuses
func (s *Service) List(ctx context.Context) ([]*Status, error) {
	return s.repo.List(ctx)
}

// Toggle flips the received flag for a (resident, period) pair. The last
// known value is re-read immediately before negating it, and the write is an
// upsert on the composite key, so concurrent toggles settle last-write-wins
// without duplicating records.
func (s *Service) Toggle(ctx context.Context, residentID, periodID string) (*Status, error) {
	if _, _, err := period.Parse(periodID); err != nil {
		return nil, err
	}

	res, err := s.residentRepo.GetByID(ctx, residentID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrUnknownResident
	}

	current, err := s.repo.Get(ctx, residentID, periodID)
	if err != nil {
		return nil, err
	}

	next := Next(current, residentID, periodID, time.Now().UTC())
	if err := s.repo.Upsert(ctx, next); err != nil {
		return nil, err
	}

	return &next, nil
}
