package risk

import "math"

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// PlannedRiskUSD computes absolute $ risk if the stop is hit.
func PlannedRiskUSD(shares, entry, stop float64) float64 {
	// price move per share times the number of shares
	return abs(entry-stop) * shares
}

// RR is the reward/risk of a single target measured from entry.
func RR(entry, stop, takeProfit float64) float64 {
	risk := abs(entry - stop)
	reward := abs(takeProfit - entry)
	if risk == 0 {
		return 0
	}
	return reward / risk
}

func RiskPct(plannedRiskUSD, equity float64) float64 {
	if equity <= 0 {
		return math.Inf(1)
	}
	return plannedRiskUSD / equity
}
