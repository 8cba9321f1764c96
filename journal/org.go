package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatCalculationOrg renders a CalculationRecord as an Org-mode block
// suitable for pasting into a trading journal. Structured facts go in the
// PROPERTIES drawer; the rendered report follows in an example block.
func FormatCalculationOrg(c CalculationRecord) string {
	heading := fmt.Sprintf("** %s: %s %s (%s)", title(c.Kind), c.Direction, c.Strategy, shortID(c.ID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":ID: %s\n", c.ID))
	b.WriteString(fmt.Sprintf(":CREATED: %s\n", c.CreatedAt.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", c.Strategy))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", c.Direction))
	b.WriteString(fmt.Sprintf(":BALANCE: %.2f\n", c.Balance))
	b.WriteString(fmt.Sprintf(":RISK_PCT: %.2f\n", 100*c.RiskFraction))
	b.WriteString(fmt.Sprintf(":STOP_LOSS: %.4f\n", c.StopLoss))
	b.WriteString(fmt.Sprintf(":ENTRY: %.4f\n", c.EffectiveEntry))
	b.WriteString(fmt.Sprintf(":ENTRIES: %s\n", c.Entries))
	b.WriteString(fmt.Sprintf(":POSITION_USD: %.2f\n", c.PositionSizeUSD))
	b.WriteString(fmt.Sprintf(":RISK_USD: %.2f\n", c.TotalRiskUSD))
	if c.Kind == "profit" {
		b.WriteString(fmt.Sprintf(":TAKE_PROFITS: %d\n", c.TakeProfits))
		b.WriteString(fmt.Sprintf(":PROFIT: %.2f\n", c.TotalProfit))
		b.WriteString(fmt.Sprintf(":RR: %.2f\n", c.RiskReward))
	}
	b.WriteString(":END:\n")
	if c.Report != "" {
		b.WriteString("\n#+begin_example\n")
		b.WriteString(strings.TrimRight(c.Report, "\n"))
		b.WriteString("\n#+end_example\n")
	}

	return b.String()
}

// FormatCalculationsOrg renders multiple calculations separated by blank lines.
func FormatCalculationsOrg(cs []CalculationRecord) string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatCalculationOrg(c))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
