package journal

import (
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/tradecalc/risk"
)

// CalculationRecord is one journaled calculation. It is an export of the
// result; nothing reads it back into a calculator.
type CalculationRecord struct {
	ID        string
	CreatedAt time.Time
	Kind      string
	Strategy  string
	Direction string

	Balance        float64
	RiskFraction   float64
	StopLoss       float64
	EffectiveEntry float64
	Entries        string // price ordered, ";" separated

	PositionSizeUSD float64
	TotalShares     float64
	TotalRiskUSD    float64

	TakeProfits int
	TotalProfit float64
	RiskReward  float64

	Report string
}

type Journal interface {
	RecordCalculation(CalculationRecord) error
	Close() error
}

// NewRecord flattens a result into a journal row.
func NewRecord(id string, at time.Time, res risk.CalculationResult, report string) CalculationRecord {
	rec := CalculationRecord{
		ID:              id,
		CreatedAt:       at.UTC(),
		Kind:            string(res.Kind),
		Strategy:        res.Strategy.String(),
		Direction:       res.Direction.String(),
		Balance:         res.Balance,
		RiskFraction:    res.RiskFraction,
		StopLoss:        res.StopLoss,
		EffectiveEntry:  res.EffectiveEntry,
		Entries:         joinPrices(res.Entries),
		PositionSizeUSD: res.PositionSizeUSD,
		TotalShares:     res.TotalShares,
		TotalRiskUSD:    res.TotalRiskUSD,
		Report:          report,
	}
	if res.Profit != nil {
		rec.TakeProfits = len(res.Profit.Legs)
		rec.TotalProfit = res.Profit.TotalProfit
		rec.RiskReward = res.Profit.RiskReward
	}
	return rec
}

func joinPrices(ps []float64) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strings.Join(parts, ";")
}
