// Package report renders calculation results as the plain-text reports the
// calculator has always printed: prices to 4 places, money to 2.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rustyeddy/tradecalc/risk"
	"github.com/shopspring/decimal"
)

const rule = "----------------------------------------\n"

// Render picks the report for the result kind.
func Render(res risk.CalculationResult) string {
	if res.Kind == risk.KindProfit && res.Profit != nil {
		return Profit(res)
	}
	return Position(res)
}

// Position renders the pre-trade sizing report.
func Position(res risk.CalculationResult) string {
	var b strings.Builder
	b.WriteString("===== Position Calculation =====\n\n")
	writeEntries(&b, res, "Entries (sorted):", "Weighted Average Entry")
	fmt.Fprintf(&b, "Stop Loss: %s\n", Fixed(res.StopLoss, 4))
	fmt.Fprintf(&b, "Trade Type: %s\n", res.Direction)
	fmt.Fprintf(&b, "Position Size (USD): %s\n", Fixed(res.PositionSizeUSD, 2))
	fmt.Fprintf(&b, "Total Risk (USD): %s\n", Fixed(res.TotalRiskUSD, 2))
	b.WriteString(rule)
	for i, a := range res.Allocations {
		fmt.Fprintf(&b, "Allocation for Entry %d (Price: $%s): $%s\n", i+1, Fixed(a.Price, 2), Fixed(a.USD, 2))
	}
	return b.String()
}

// Profit renders the post-trade profit report.
func Profit(res risk.CalculationResult) string {
	p := res.Profit
	if p == nil {
		p = &risk.Profit{}
	}

	var b strings.Builder
	b.WriteString("===== Profit Calculation =====\n\n")
	writeEntries(&b, res, "Triggered Entries:", "Weighted Avg Entry")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Stop Loss: %s\n", Fixed(res.StopLoss, 4))
	fmt.Fprintf(&b, "Trade Type: %s\n", res.Direction)
	fmt.Fprintf(&b, "Position Size (USD): %s\n", Fixed(res.PositionSizeUSD, 2))
	fmt.Fprintf(&b, "Total Risk (USD): %s\n", Fixed(res.TotalRiskUSD, 2))
	fmt.Fprintf(&b, "Risk–Reward Ratio: %s\n", Fixed(p.RiskReward, 2))
	b.WriteString(rule)
	b.WriteString("Take Profit Details:\n")
	for _, l := range p.Legs {
		if l.Leg.Triggered {
			fmt.Fprintf(&b, "  TP%d (Triggered): Planned Price = %s, Close%% = %s%%, Profit = $%s\n",
				l.Index, Fixed(l.Leg.Price, 2), Fixed(l.Leg.ClosePercent, 2), Fixed(l.Profit, 2))
		} else {
			fmt.Fprintf(&b, "  TP%d (Not Triggered): Planned Price = %s, Close%% = %s%%\n",
				l.Index, Fixed(l.Leg.Price, 2), Fixed(l.Leg.ClosePercent, 2))
		}
	}
	if p.ClosePrice != nil && p.RemainingPercent > 0 {
		fmt.Fprintf(&b, "  Remaining (%s%%) closed at Global Close Price = %s, Profit = $%s\n",
			Fixed(p.RemainingPercent, 2), Fixed(*p.ClosePrice, 2), Fixed(p.RemainingProfit, 2))
	}
	b.WriteString(rule)
	if p.Actual() {
		fmt.Fprintf(&b, "Total Actual Profit: $%s\n", Fixed(p.TotalProfit, 2))
	} else {
		fmt.Fprintf(&b, "Total Planned Profit: $%s\n", Fixed(p.TotalProfit, 2))
	}
	return b.String()
}

func writeEntries(b *strings.Builder, res risk.CalculationResult, listLabel, weightedLabel string) {
	fmt.Fprintf(b, "Entry Type: %s\n", res.Strategy)
	if res.Strategy == risk.SingleEntry || len(res.Entries) == 1 {
		fmt.Fprintf(b, "Entry Price: %s\n", Fixed(res.EffectiveEntry, 4))
		return
	}

	b.WriteString(listLabel + "\n")
	for i, e := range res.Entries {
		if res.Strategy == risk.Exponential {
			fmt.Fprintf(b, "  E%d: %s (ratio=%s)\n", i+1, Fixed(e, 4), ratio(res.Weights[i]))
		} else {
			fmt.Fprintf(b, "  E%d: %s\n", i+1, Fixed(e, 4))
		}
	}
	if res.Strategy == risk.Exponential {
		fmt.Fprintf(b, "%s: %s\n", weightedLabel, Fixed(res.EffectiveEntry, 4))
	} else {
		fmt.Fprintf(b, "Average Entry: %s\n", Fixed(res.EffectiveEntry, 4))
	}
}

// Fixed formats x with the given decimal places, rounding half away from zero.
func Fixed(x float64, places int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', int(places), 64)
	}
	return decimal.NewFromFloat(x).StringFixed(places)
}

// ratio prints weights the way they were always shown: 0.5, 1.0, 1.5.
func ratio(w float64) string {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
