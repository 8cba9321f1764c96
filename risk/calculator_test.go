package risk

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePosition_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       PositionRequest
		direction Direction
		entry     float64
		size      float64
	}{
		{
			name: "single long",
			req: PositionRequest{
				Balance: 10000, RiskFraction: 0.01, StopLoss: 95,
				Strategy: SingleEntry, Entries: []float64{100},
			},
			direction: Long,
			entry:     100,
			size:      2000,
		},
		{
			name: "equal dca short",
			req: PositionRequest{
				Balance: 5000, RiskFraction: 0.02, StopLoss: 100,
				Strategy: EqualDCA, Entries: []float64{90, 95},
			},
			direction: Short,
			entry:     92.5,
			size:      5000 * 0.02 * 92.5 / 7.5,
		},
		{
			name: "exponential long",
			req: PositionRequest{
				Balance: 10000, RiskFraction: 0.01, StopLoss: 90,
				Strategy: Exponential, Entries: []float64{105, 100, 95},
			},
			direction: Long,
			entry:     295.0 / 3.0,
			size:      10000 * 0.01 * (295.0 / 3.0) / (295.0/3.0 - 90),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := CalculatePosition(nil, tt.req)
			require.NoError(t, err)

			assert.Equal(t, KindPosition, got.Kind)
			assert.Nil(t, got.Profit)
			assert.Equal(t, tt.direction, got.Direction)
			assert.InDelta(t, tt.entry, got.EffectiveEntry, 1e-9)
			assert.InDelta(t, tt.size, got.PositionSizeUSD, 1e-6)
			assert.InDelta(t, tt.req.Balance*tt.req.RiskFraction, got.TotalRiskUSD, 1e-6)
		})
	}
}

func TestCalculatePosition_MixedDirectionRejected(t *testing.T) {
	t.Parallel()

	_, err := CalculatePosition(Engine{}, PositionRequest{
		Balance: 10000, RiskFraction: 0.01, StopLoss: 95,
		Strategy: EqualDCA, Entries: []float64{105, 85},
	})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "entries", ve.Field)
}

func TestCalculateProfit(t *testing.T) {
	t.Parallel()

	// 40 shares: 10000 * 0.02 * 100 / 5 = 4000 USD at 100.
	got, err := CalculateProfit(nil, ProfitRequest{
		PositionRequest: PositionRequest{
			Balance: 10000, RiskFraction: 0.02, StopLoss: 95,
			Strategy: SingleEntry, Entries: []float64{100},
		},
		Legs: []TakeProfitLeg{
			{Price: 110, ClosePercent: 50, Triggered: true},
			{Price: 120, ClosePercent: 50},
		},
		ClosePrice: price(105),
	})
	require.NoError(t, err)

	assert.Equal(t, KindProfit, got.Kind)
	require.NotNil(t, got.Profit)
	assert.InDelta(t, 40.0, got.TotalShares, 1e-9)
	assert.InDelta(t, 200.0, got.Profit.Legs[0].Profit, 1e-9)
	assert.InDelta(t, 100.0, got.Profit.RemainingProfit, 1e-9)
	assert.InDelta(t, 300.0, got.Profit.TotalProfit, 1e-9)
	assert.InDelta(t, 1.5, got.Profit.RiskReward, 1e-9)
}

type countingCalc struct {
	Engine
	mu    sync.Mutex
	calls []string
}

func (c *countingCalc) record(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, s)
}

func (c *countingCalc) ResolveEntries(entries []float64, s EntryStrategy, stop float64) (Resolution, error) {
	c.record("resolve")
	return c.Engine.ResolveEntries(entries, s, stop)
}

func (c *countingCalc) SizePosition(in SizeInputs) (Sizing, error) {
	c.record("size")
	return c.Engine.SizePosition(in)
}

func (c *countingCalc) ComputeProfit(in ProfitInputs) (Profit, error) {
	c.record("profit")
	return c.Engine.ComputeProfit(in)
}

func TestCalculateProfit_UsesCalculator(t *testing.T) {
	t.Parallel()

	c := &countingCalc{}
	_, err := CalculateProfit(c, ProfitRequest{
		PositionRequest: PositionRequest{
			Balance: 1000, RiskFraction: 0.01, StopLoss: 9,
			Strategy: SingleEntry, Entries: []float64{10},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"resolve", "size", "profit"}, c.calls)
}

func TestEngine_ConcurrentCallsAreIndependent(t *testing.T) {
	t.Parallel()

	req := PositionRequest{
		Balance: 10000, RiskFraction: 0.01, StopLoss: 90,
		Strategy: Exponential, Entries: []float64{95, 105, 100},
	}
	want, err := CalculatePosition(Engine{}, req)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]CalculationResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = CalculatePosition(Engine{}, req)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
	assert.Equal(t, []float64{95, 105, 100}, req.Entries)
}
