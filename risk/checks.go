package risk

import "fmt"

type Violation struct {
	Code string
	Msg  string
}

type Decision struct {
	Allowed    bool
	Violations []Violation

	PlannedRiskUSD float64
	PlannedRiskPct float64
	RiskReward     float64
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate reviews a finished calculation against p. It never changes the
// result; callers decide whether a violation blocks the trade.
func Evaluate(p Policy, res CalculationResult) Decision {
	d := Decision{Allowed: true}

	d.PlannedRiskUSD = res.TotalRiskUSD
	d.PlannedRiskPct = RiskPct(res.TotalRiskUSD, res.Balance)

	if p.MaxRiskPct > 0 && d.PlannedRiskPct > p.MaxRiskPct+1e-12 {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("planned risk %.2f%% exceeds max %.2f%%",
				100*d.PlannedRiskPct, 100*p.MaxRiskPct))
	}

	if res.Profit == nil {
		return d
	}
	pr := res.Profit
	d.RiskReward = pr.RiskReward

	if p.MinRR > 0 && pr.RiskReward < p.MinRR {
		d.add("RR_TOO_LOW",
			fmt.Sprintf("RR %.2f below minimum %.2f", pr.RiskReward, p.MinRR))
	}
	if p.MaxTakeProfits > 0 && len(pr.Legs) > p.MaxTakeProfits {
		d.add("TOO_MANY_TAKE_PROFITS",
			fmt.Sprintf("%d take profits exceeds max %d", len(pr.Legs), p.MaxTakeProfits))
	}
	if pr.RemainingPercent < 0 {
		d.add("CLOSE_PERCENT_OVER_100",
			fmt.Sprintf("triggered take profits close %.2f%% of the position", 100-pr.RemainingPercent))
	}
	return d
}
