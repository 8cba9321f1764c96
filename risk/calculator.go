package risk

// Calculator is the capability set shared by every calculator front end.
type Calculator interface {
	ResolveEntries(entries []float64, s EntryStrategy, stopLoss float64) (Resolution, error)
	SizePosition(in SizeInputs) (Sizing, error)
	ComputeProfit(in ProfitInputs) (Profit, error)
}

// Engine is the stateless Calculator. The zero value is ready to use and
// safe for concurrent callers.
type Engine struct{}

var _ Calculator = Engine{}

func (Engine) ResolveEntries(entries []float64, s EntryStrategy, stopLoss float64) (Resolution, error) {
	return ResolveEntries(entries, s, stopLoss)
}

func (Engine) SizePosition(in SizeInputs) (Sizing, error) {
	return SizePosition(in)
}

func (Engine) ComputeProfit(in ProfitInputs) (Profit, error) {
	return ComputeProfit(in)
}

// Kind tells a prospective sizing result from a post-trade profit result.
type Kind string

const (
	KindPosition Kind = "position"
	KindProfit   Kind = "profit"
)

// PositionRequest holds the parsed inputs of the pre-trade calculator.
type PositionRequest struct {
	Balance      float64
	RiskFraction float64
	StopLoss     float64
	Strategy     EntryStrategy
	Entries      []float64
}

// ProfitRequest holds the parsed inputs of the post-trade calculator. Entries
// must already be filtered to the ones that were triggered.
type ProfitRequest struct {
	PositionRequest
	Legs       []TakeProfitLeg
	ClosePrice *float64
}

// CalculationResult is the full breakdown of one calculation.
type CalculationResult struct {
	Kind         Kind
	Balance      float64
	RiskFraction float64

	Strategy       EntryStrategy
	Direction      Direction
	StopLoss       float64
	EffectiveEntry float64
	Entries        []float64
	Weights        []float64
	Allocations    []Allocation

	PositionSizeUSD float64
	TotalShares     float64
	TotalRiskUSD    float64

	// Profit is nil for KindPosition.
	Profit *Profit
}

// CalculatePosition runs the pre-trade pipeline: resolve then size. A nil
// Calculator uses Engine.
func CalculatePosition(c Calculator, req PositionRequest) (CalculationResult, error) {
	if c == nil {
		c = Engine{}
	}
	res, err := c.ResolveEntries(req.Entries, req.Strategy, req.StopLoss)
	if err != nil {
		return CalculationResult{}, err
	}
	sz, err := c.SizePosition(SizeInputs{
		Balance:      req.Balance,
		RiskFraction: req.RiskFraction,
		Entry:        res,
	})
	if err != nil {
		return CalculationResult{}, err
	}

	return CalculationResult{
		Kind:            KindPosition,
		Balance:         req.Balance,
		RiskFraction:    req.RiskFraction,
		Strategy:        res.Strategy,
		Direction:       res.Direction,
		StopLoss:        res.StopLoss,
		EffectiveEntry:  res.EffectiveEntry,
		Entries:         res.Entries,
		Weights:         res.Weights,
		Allocations:     sz.Allocations,
		PositionSizeUSD: sz.PositionSizeUSD,
		TotalShares:     sz.TotalShares,
		TotalRiskUSD:    sz.TotalRiskUSD,
	}, nil
}

// CalculateProfit runs the post-trade pipeline: resolve, size, then realize
// the take-profit legs.
func CalculateProfit(c Calculator, req ProfitRequest) (CalculationResult, error) {
	if c == nil {
		c = Engine{}
	}
	out, err := CalculatePosition(c, req.PositionRequest)
	if err != nil {
		return CalculationResult{}, err
	}

	p, err := c.ComputeProfit(ProfitInputs{
		EffectiveEntry: out.EffectiveEntry,
		StopLoss:       out.StopLoss,
		Direction:      out.Direction,
		TotalShares:    out.TotalShares,
		Legs:           req.Legs,
		ClosePrice:     req.ClosePrice,
	})
	if err != nil {
		return CalculationResult{}, err
	}

	out.Kind = KindProfit
	out.Profit = &p
	return out, nil
}
