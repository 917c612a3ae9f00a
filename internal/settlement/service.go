package settlement

import (
	"context"

	"github.com/eduardomb/contas/internal/bill"
	"github.com/eduardomb/contas/internal/export"
	"github.com/eduardomb/contas/internal/period"
	"github.com/eduardomb/contas/internal/receipt"
	"github.com/eduardomb/contas/internal/resident"
	"github.com/eduardomb/contas/internal/settlement/engine"
)

// Service assembles settlement breakdowns from the stored entities. The
// arithmetic itself lives in the engine package; this layer only fetches and
// feeds it, so every request sees a fresh recomputation of current state.
type Service struct {
	residentRepo *resident.Repository
	billRepo     *bill.Repository
	receiptRepo  *receipt.Repository
}

// NewService creates a new settlement service with repository dependencies injected
func NewService(residentRepo *resident.Repository, billRepo *bill.Repository, receiptRepo *receipt.Repository) *Service {
	return &Service{
		residentRepo: residentRepo,
		billRepo:     billRepo,
		receiptRepo:  receiptRepo,
	}
}

// Result bundles a period's breakdown with the all-time surplus balance.
type Result struct {
	Breakdown *engine.Breakdown
	Bills     []*bill.Bill
	Surplus   float64
}

// Breakdown computes the settlement for one period
func (s *Service) Breakdown(ctx context.Context, periodID string) (*Result, error) {
	if _, _, err := period.Parse(periodID); err != nil {
		return nil, err
	}

	residents, err := s.residentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	periodBills, err := s.billRepo.List(ctx, periodID)
	if err != nil {
		return nil, err
	}
	receipts, err := s.receiptRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	// The surplus pool spans the entire history, not just this period.
	allBills, err := s.billRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}

	return &Result{
		Breakdown: engine.Compute(residents, periodBills, receipts, periodID),
		Bills:     periodBills,
		Surplus:   engine.SurplusBalance(allBills),
	}, nil
}

// Summary renders the shareable text summary for one period
func (s *Service) Summary(ctx context.Context, periodID string) (string, error) {
	result, err := s.Breakdown(ctx, periodID)
	if err != nil {
		return "", err
	}

	label, err := period.Label(periodID)
	if err != nil {
		return "", err
	}

	return export.Render(export.Summary{
		PeriodLabel: label,
		Bills:       result.Bills,
		Breakdown:   result.Breakdown,
		Surplus:     result.Surplus,
	}), nil
}
