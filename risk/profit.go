package risk

// TakeProfitLeg is a partial close of ClosePercent of the original size.
type TakeProfitLeg struct {
	Price        float64
	ClosePercent float64 // 0-100
	Triggered    bool
}

// LegResult is the realized outcome of one take-profit leg. Profit is zero
// for legs that were not triggered.
type LegResult struct {
	Index     int
	Leg       TakeProfitLeg
	Profit    float64
	PlannedRR float64
}

// ProfitInputs feeds the profit engine. TotalShares is
// PositionSizeUSD / EffectiveEntry from SizePosition.
type ProfitInputs struct {
	EffectiveEntry float64
	StopLoss       float64
	Direction      Direction
	TotalShares    float64
	Legs           []TakeProfitLeg

	// ClosePrice closes whatever is left after the triggered legs. Nil means
	// the trade is still open and the remainder contributes nothing.
	ClosePrice *float64
}

// Profit aggregates realized profit across take-profit legs and the remainder.
type Profit struct {
	Legs []LegResult

	// RemainingPercent is 100 minus the triggered close percentages. It goes
	// negative when triggered legs exceed 100%, in which case nothing remains.
	RemainingPercent float64
	ClosePrice       *float64
	RemainingProfit  float64
	TotalProfit      float64
	TotalRiskUSD     float64
	RiskReward       float64
}

// Actual reports whether the trade was closed at a known price.
func (p Profit) Actual() bool {
	return p.ClosePrice != nil
}

// ComputeProfit realizes the triggered legs, closes the remainder at
// ClosePrice when one is given and relates the total to the risk at stop.
func ComputeProfit(in ProfitInputs) (Profit, error) {
	if !finite(in.EffectiveEntry) || in.EffectiveEntry <= 0 {
		return Profit{}, invalid("entries", "effective entry must be a positive price")
	}
	if !finite(in.StopLoss) {
		return Profit{}, invalid("stop_loss", "must be a finite number")
	}
	if !finite(in.TotalShares) || in.TotalShares < 0 {
		return Profit{}, invalid("shares", "must not be negative")
	}
	if in.ClosePrice != nil && !finite(*in.ClosePrice) {
		return Profit{}, invalid("close_price", "must be a finite number")
	}
	for i, leg := range in.Legs {
		if !finite(leg.Price) {
			return Profit{}, invalid("take_profits", "TP%d price must be a finite number", i+1)
		}
		if !finite(leg.ClosePercent) || leg.ClosePercent < 0 || leg.ClosePercent > 100 {
			return Profit{}, invalid("take_profits", "TP%d close percent must be between 0 and 100", i+1)
		}
	}

	out := Profit{
		Legs:         make([]LegResult, len(in.Legs)),
		TotalRiskUSD: PlannedRiskUSD(in.TotalShares, in.EffectiveEntry, in.StopLoss),
	}

	triggeredPct := 0.0
	fromLegs := 0.0
	for i, leg := range in.Legs {
		r := LegResult{
			Index:     i + 1,
			Leg:       leg,
			PlannedRR: RR(in.EffectiveEntry, in.StopLoss, leg.Price),
		}
		if leg.Triggered {
			triggeredPct += leg.ClosePercent
			r.Profit = segmentProfit(in.Direction, in.EffectiveEntry, leg.Price, in.TotalShares, leg.ClosePercent)
			fromLegs += r.Profit
		}
		out.Legs[i] = r
	}

	out.RemainingPercent = 100.0 - triggeredPct
	if in.ClosePrice != nil {
		cp := *in.ClosePrice
		out.ClosePrice = &cp
		if out.RemainingPercent > 0 {
			out.RemainingProfit = segmentProfit(in.Direction, in.EffectiveEntry, cp, in.TotalShares, out.RemainingPercent)
		}
	}

	out.TotalProfit = fromLegs + out.RemainingProfit
	if out.TotalRiskUSD != 0 {
		out.RiskReward = out.TotalProfit / out.TotalRiskUSD
	}
	return out, nil
}

// segmentProfit is the signed profit of closing pct% of the shares at exit.
func segmentProfit(d Direction, entry, exit, shares, pct float64) float64 {
	if d == Short {
		return (entry - exit) * (shares * (pct / 100.0))
	}
	return (exit - entry) * (shares * (pct / 100.0))
}
