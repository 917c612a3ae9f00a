// Package export renders the shareable monthly summary. The output is pasted
// verbatim into the household group chat, so the layout is a contract: same
// inputs, same bytes, every time.
package export

import (
	"fmt"
	"strings"

	"github.com/eduardomb/contas/internal/bill"
	"github.com/eduardomb/contas/internal/settlement/engine"
)

// Summary holds everything the text rendering needs.
type Summary struct {
	PeriodLabel string
	Bills       []*bill.Bill
	Breakdown   *engine.Breakdown
	Surplus     float64
}

// Render produces the summary text. Bills render in the order given,
// residents in breakdown order; amounts use plain dot-decimal formatting so
// the text survives any chat client.
func Render(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 RESUMO - %s\n\n", s.PeriodLabel)

	b.WriteString("📝 CONTAS DO MÊS:\n")
	for _, item := range s.Bills {
		glyph := "❌"
		if item.IsPaid {
			glyph = "✅"
		}
		fmt.Fprintf(&b, "%s %s: R$ %.2f\n", glyph, item.Description, item.BudgetedValue)
	}

	b.WriteString("\n👥 VALORES POR MORADOR:\n")
	for _, share := range s.Breakdown.Residents {
		glyph := "⏳"
		if share.IsReceived {
			glyph = "✅"
		}
		fmt.Fprintf(&b, "*%s*: R$ %.2f %s\n", strings.ToUpper(share.Name), share.Total, glyph)
	}

	fmt.Fprintf(&b, "\n💰 TOTAL: R$ %.2f\n", s.Breakdown.PeriodTotal)
	fmt.Fprintf(&b, "🐷 SALDO CAIXINHA: R$ %.2f\n", s.Surplus)

	return b.String()
}
