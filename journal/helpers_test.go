package journal

import (
	"testing"
	"time"

	"github.com/rustyeddy/tradecalc/risk"
	"github.com/stretchr/testify/require"
)

func testRecord(t *testing.T, id string, at time.Time) CalculationRecord {
	t.Helper()

	closePrice := 105.0
	res, err := risk.CalculateProfit(nil, risk.ProfitRequest{
		PositionRequest: risk.PositionRequest{
			Balance: 10000, RiskFraction: 0.02, StopLoss: 95,
			Strategy: risk.SingleEntry, Entries: []float64{100},
		},
		Legs: []risk.TakeProfitLeg{
			{Price: 110, ClosePercent: 50, Triggered: true},
			{Price: 120, ClosePercent: 50},
		},
		ClosePrice: &closePrice,
	})
	require.NoError(t, err)

	return NewRecord(id, at, res, "===== Profit Calculation =====\n")
}
