package risk

// Policy holds the advisory limits a calculation is reviewed against. A zero
// limit disables its check.
type Policy struct {
	// Risk limits
	MaxRiskPct float64 // 0.02

	// Trade constraints
	MinRR          float64 // 1.5
	MaxTakeProfits int     // 5
}

// DefaultPolicy mirrors the limits of the original calculator form.
func DefaultPolicy() Policy {
	return Policy{
		MaxRiskPct:     0.02,
		MinRR:          0,
		MaxTakeProfits: 5,
	}
}
