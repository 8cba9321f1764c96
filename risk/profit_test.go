package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 { return &v }

func TestComputeProfit_PartialCloseWithRemainder(t *testing.T) {
	t.Parallel()

	got, err := ComputeProfit(ProfitInputs{
		EffectiveEntry: 100,
		StopLoss:       95,
		Direction:      Long,
		TotalShares:    40,
		Legs: []TakeProfitLeg{
			{Price: 110, ClosePercent: 50, Triggered: true},
			{Price: 120, ClosePercent: 50, Triggered: false},
		},
		ClosePrice: price(105),
	})
	require.NoError(t, err)

	require.Len(t, got.Legs, 2)
	assert.InDelta(t, 200.0, got.Legs[0].Profit, 1e-9)
	assert.Equal(t, 0.0, got.Legs[1].Profit)
	assert.Equal(t, 2, got.Legs[1].Index)
	assert.InDelta(t, 50.0, got.RemainingPercent, 1e-12)
	assert.InDelta(t, 100.0, got.RemainingProfit, 1e-9)
	assert.InDelta(t, 300.0, got.TotalProfit, 1e-9)
	assert.InDelta(t, 200.0, got.TotalRiskUSD, 1e-9)
	assert.InDelta(t, 1.5, got.RiskReward, 1e-12)
	assert.True(t, got.Actual())
}

func TestComputeProfit_Short(t *testing.T) {
	t.Parallel()

	got, err := ComputeProfit(ProfitInputs{
		EffectiveEntry: 92.5,
		StopLoss:       100,
		Direction:      Short,
		TotalShares:    10,
		Legs: []TakeProfitLeg{
			{Price: 85, ClosePercent: 25, Triggered: true},
			{Price: 80, ClosePercent: 25, Triggered: true},
		},
		ClosePrice: price(95),
	})
	require.NoError(t, err)

	assert.InDelta(t, (92.5-85)*10*0.25, got.Legs[0].Profit, 1e-9)
	assert.InDelta(t, (92.5-80)*10*0.25, got.Legs[1].Profit, 1e-9)
	assert.InDelta(t, (92.5-95)*10*0.5, got.RemainingProfit, 1e-9)
	assert.InDelta(t, 18.75+31.25-12.5, got.TotalProfit, 1e-9)
	assert.InDelta(t, 75.0, got.TotalRiskUSD, 1e-9)
}

func TestComputeProfit_NoLegs(t *testing.T) {
	t.Parallel()

	withClose, err := ComputeProfit(ProfitInputs{
		EffectiveEntry: 100,
		StopLoss:       95,
		Direction:      Long,
		TotalShares:    40,
		ClosePrice:     price(103),
	})
	require.NoError(t, err)
	assert.Empty(t, withClose.Legs)
	assert.InDelta(t, 100.0, withClose.RemainingPercent, 1e-12)
	assert.InDelta(t, 120.0, withClose.TotalProfit, 1e-9)

	open, err := ComputeProfit(ProfitInputs{
		EffectiveEntry: 100,
		StopLoss:       95,
		Direction:      Long,
		TotalShares:    40,
		Legs: []TakeProfitLeg{
			{Price: 110, ClosePercent: 50},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, open.TotalProfit)
	assert.Equal(t, 0.0, open.RiskReward)
	assert.False(t, open.Actual())
}

func TestComputeProfit_OverClosedRemainderIsIgnored(t *testing.T) {
	t.Parallel()

	got, err := ComputeProfit(ProfitInputs{
		EffectiveEntry: 100,
		StopLoss:       95,
		Direction:      Long,
		TotalShares:    40,
		Legs: []TakeProfitLeg{
			{Price: 110, ClosePercent: 80, Triggered: true},
			{Price: 115, ClosePercent: 40, Triggered: true},
		},
		ClosePrice: price(90),
	})
	require.NoError(t, err)

	assert.InDelta(t, -20.0, got.RemainingPercent, 1e-12)
	assert.Equal(t, 0.0, got.RemainingProfit)
	assert.InDelta(t, 10*40*0.8+15*40*0.4, got.TotalProfit, 1e-9)
}

func TestComputeProfit_ZeroRiskFallsBackToZeroRR(t *testing.T) {
	t.Parallel()

	got, err := ComputeProfit(ProfitInputs{
		EffectiveEntry: 100,
		StopLoss:       95,
		Direction:      Long,
		TotalShares:    0,
		ClosePrice:     price(110),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.TotalRiskUSD)
	assert.Equal(t, 0.0, got.RiskReward)
}

func TestComputeProfit_PlannedRR(t *testing.T) {
	t.Parallel()

	got, err := ComputeProfit(ProfitInputs{
		EffectiveEntry: 100,
		StopLoss:       95,
		Direction:      Long,
		TotalShares:    1,
		Legs:           []TakeProfitLeg{{Price: 115, ClosePercent: 100}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got.Legs[0].PlannedRR, 1e-12)
}

func TestComputeProfit_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   ProfitInputs
	}{
		{"zero entry", ProfitInputs{EffectiveEntry: 0, StopLoss: 95, TotalShares: 1}},
		{"negative shares", ProfitInputs{EffectiveEntry: 100, StopLoss: 95, TotalShares: -1}},
		{"close pct over 100", ProfitInputs{
			EffectiveEntry: 100, StopLoss: 95, TotalShares: 1,
			Legs: []TakeProfitLeg{{Price: 110, ClosePercent: 120, Triggered: true}},
		}},
		{"negative close pct", ProfitInputs{
			EffectiveEntry: 100, StopLoss: 95, TotalShares: 1,
			Legs: []TakeProfitLeg{{Price: 110, ClosePercent: -5}},
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ComputeProfit(tt.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
