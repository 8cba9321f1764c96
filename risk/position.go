package risk

// SizeInputs feeds the position size engine. Entry is normally the output of
// ResolveEntries.
type SizeInputs struct {
	Balance      float64
	RiskFraction float64 // 0.01 for 1%
	Entry        Resolution
}

// Allocation is the dollar amount assigned to one resolved entry.
type Allocation struct {
	Price    float64
	Weight   float64
	Fraction float64
	USD      float64
}

// Sizing is the result of SizePosition.
type Sizing struct {
	PositionSizeUSD float64
	TotalShares     float64
	TotalRiskUSD    float64
	Allocations     []Allocation
}

// SizePosition converts an account risk budget into a position size and
// splits it across the resolved entries.
//
//	positionSizeUSD = balance * risk * entry / |entry - stop|
func SizePosition(in SizeInputs) (Sizing, error) {
	if !finite(in.Balance) || in.Balance <= 0 {
		return Sizing{}, invalid("balance", "must be positive")
	}
	if !finite(in.RiskFraction) || in.RiskFraction <= 0 || in.RiskFraction > 1 {
		return Sizing{}, invalid("risk", "must be between 0 and 100 percent")
	}

	res := in.Entry
	n := len(res.Entries)
	if n == 0 {
		return Sizing{}, invalid("entries", "at least one entry price is required")
	}
	if len(res.Weights) != n {
		return Sizing{}, invalid("weights", "have %d weights for %d entries", len(res.Weights), n)
	}
	if !finite(res.EffectiveEntry) || res.EffectiveEntry <= 0 {
		return Sizing{}, invalid("entries", "effective entry must be a positive price")
	}

	dist := abs(res.EffectiveEntry - res.StopLoss)
	if dist == 0 {
		return Sizing{}, &DivisionByZeroError{Op: "size position"}
	}

	posUSD := in.Balance * in.RiskFraction * res.EffectiveEntry / dist
	shares := posUSD / res.EffectiveEntry

	return Sizing{
		PositionSizeUSD: posUSD,
		TotalShares:     shares,
		TotalRiskUSD:    PlannedRiskUSD(shares, res.EffectiveEntry, res.StopLoss),
		Allocations:     allocate(res, posUSD),
	}, nil
}

func allocate(res Resolution, posUSD float64) []Allocation {
	n := len(res.Entries)
	out := make([]Allocation, n)

	switch {
	case res.Strategy == SingleEntry || n == 1:
		out[0] = Allocation{
			Price:    res.EffectiveEntry,
			Weight:   1,
			Fraction: 1,
			USD:      posUSD,
		}
	case res.Strategy == EqualDCA:
		alloc := posUSD / float64(n)
		for i, p := range res.Entries {
			out[i] = Allocation{
				Price:    p,
				Weight:   res.Weights[i],
				Fraction: 1 / float64(n),
				USD:      alloc,
			}
		}
	default:
		sumW := 0.0
		for _, w := range res.Weights {
			sumW += w
		}
		for i, p := range res.Entries {
			frac := res.Weights[i] / sumW
			out[i] = Allocation{
				Price:    p,
				Weight:   res.Weights[i],
				Fraction: frac,
				USD:      posUSD * frac,
			}
		}
	}
	return out
}
