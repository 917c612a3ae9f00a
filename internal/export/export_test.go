package export

import (
	"testing"
	"time"

	"github.com/eduardomb/contas/internal/bill"
	"github.com/eduardomb/contas/internal/settlement/engine"
)

func sampleSummary() Summary {
	paidAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	return Summary{
		PeriodLabel: "MARÇO 2024",
		Bills: []*bill.Bill{
			{Description: "Aluguel", BudgetedValue: 2000, IsPaid: true, PaidAt: &paidAt},
			{Description: "Internet", BudgetedValue: 99.9},
		},
		Breakdown: &engine.Breakdown{
			PeriodID: "2024-03",
			Residents: []engine.ResidentShare{
				{Name: "Eduardo", Total: 558.16, IsReceived: true},
				{Name: "Júlia", Total: 312.35},
			},
			PeriodTotal: 2099.9,
		},
		Surplus: 45.5,
	}
}

func TestRenderLayout(t *testing.T) {
	want := "📊 RESUMO - MARÇO 2024\n" +
		"\n" +
		"📝 CONTAS DO MÊS:\n" +
		"✅ Aluguel: R$ 2000.00\n" +
		"❌ Internet: R$ 99.90\n" +
		"\n" +
		"👥 VALORES POR MORADOR:\n" +
		"*EDUARDO*: R$ 558.16 ✅\n" +
		"*JÚLIA*: R$ 312.35 ⏳\n" +
		"\n" +
		"💰 TOTAL: R$ 2099.90\n" +
		"🐷 SALDO CAIXINHA: R$ 45.50\n"

	got := Render(sampleSummary())
	if got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	s := sampleSummary()
	first := Render(s)
	for i := 0; i < 5; i++ {
		if Render(s) != first {
			t.Fatal("Render output changed across calls with identical input")
		}
	}
}

func TestRenderEmptyPeriod(t *testing.T) {
	s := Summary{
		PeriodLabel: "JANEIRO 2025",
		Breakdown:   &engine.Breakdown{PeriodID: "2025-01"},
	}

	want := "📊 RESUMO - JANEIRO 2025\n" +
		"\n" +
		"📝 CONTAS DO MÊS:\n" +
		"\n" +
		"👥 VALORES POR MORADOR:\n" +
		"\n" +
		"💰 TOTAL: R$ 0.00\n" +
		"🐷 SALDO CAIXINHA: R$ 0.00\n"

	if got := Render(s); got != want {
		t.Errorf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0,00"},
		{12.3, "12,30"},
		{1234.56, "1.234,56"},
		{1234567.89, "1.234.567,89"},
		{-987.65, "-987,65"},
	}

	for _, tt := range tests {
		if got := FormatBRL(tt.in); got != tt.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
