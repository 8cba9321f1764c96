package risk

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// EntryStrategy selects how one or more entry prices are combined.
type EntryStrategy int

const (
	SingleEntry EntryStrategy = iota
	EqualDCA
	Exponential
)

// EntryEpsilon is the absolute distance under which an effective entry is
// considered equal to the stop loss.
const EntryEpsilon = 1e-9

func (s EntryStrategy) String() string {
	switch s {
	case SingleEntry:
		return "Single Entry"
	case EqualDCA:
		return "Equal-Sized DCA"
	case Exponential:
		return "Exponential Entries"
	default:
		return fmt.Sprintf("EntryStrategy(%d)", int(s))
	}
}

// ParseEntryStrategy accepts the display names as well as the short forms
// "single", "dca" and "exponential".
func ParseEntryStrategy(s string) (EntryStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "single entry", "single-entry":
		return SingleEntry, nil
	case "dca", "equal", "equal-dca", "equal dca", "equal-sized dca":
		return EqualDCA, nil
	case "exp", "exponential", "exponential entries":
		return Exponential, nil
	}
	return SingleEntry, invalid("strategy", "unknown entry strategy %q", s)
}

// EntryCounts lists the entry counts the strategy accepts.
func (s EntryStrategy) EntryCounts() []int {
	if s == SingleEntry {
		return []int{1}
	}
	return []int{2, 3}
}

// CountAllowed reports whether n entries are valid for the strategy.
func (s EntryStrategy) CountAllowed(n int) bool {
	for _, c := range s.EntryCounts() {
		if c == n {
			return true
		}
	}
	return false
}

// Weights returns the per-entry weight vector for n entries. Weights apply
// to entries in resolved order, index 0 being the entry nearest the market.
func (s EntryStrategy) Weights(n int) ([]float64, error) {
	if !s.CountAllowed(n) {
		return nil, invalid("entries", "%s requires %s entries, got %d", s, countText(s), n)
	}
	switch s {
	case Exponential:
		if n == 2 {
			return []float64{0.5, 1.0}, nil
		}
		return []float64{0.5, 1.0, 1.5}, nil
	default:
		w := make([]float64, n)
		for i := range w {
			w[i] = 1.0
		}
		return w, nil
	}
}

func countText(s EntryStrategy) string {
	if s == SingleEntry {
		return "exactly 1"
	}
	return "2 or 3"
}

// Direction is derived from where the entries sit relative to the stop.
type Direction int

const (
	Long Direction = iota
	Short
)

func (d Direction) String() string {
	if d == Short {
		return "Short"
	}
	return "Long"
}

// Sign is +1 for Long and -1 for Short.
func (d Direction) Sign() float64 {
	if d == Short {
		return -1
	}
	return 1
}

// Resolution is the reduced form of an entry set.
type Resolution struct {
	Strategy       EntryStrategy
	Direction      Direction
	StopLoss       float64
	EffectiveEntry float64

	// Entries are price ordered: descending for Long, ascending for Short.
	Entries []float64
	Weights []float64
}

// ResolveEntries validates an entry set against the stop loss, orders it and
// reduces it to a single effective entry price. The input slice is not
// modified.
func ResolveEntries(entries []float64, s EntryStrategy, stopLoss float64) (Resolution, error) {
	n := len(entries)
	if n == 0 {
		return Resolution{}, invalid("entries", "at least one entry price is required")
	}
	if !s.CountAllowed(n) {
		return Resolution{}, invalid("entries", "%s requires %s entries, got %d", s, countText(s), n)
	}
	if !finite(stopLoss) {
		return Resolution{}, invalid("stop_loss", "must be a finite number")
	}
	for i, e := range entries {
		if !finite(e) || e <= 0 {
			return Resolution{}, invalid("entries", "entry %d must be a positive price, got %v", i+1, e)
		}
	}

	ordered := make([]float64, n)
	copy(ordered, entries)

	var dir Direction
	if n > 1 {
		allAbove, allBelow := true, true
		for _, e := range ordered {
			if e <= stopLoss {
				allAbove = false
			}
			if e >= stopLoss {
				allBelow = false
			}
		}
		if !allAbove && !allBelow {
			return Resolution{}, invalid("entries",
				"for multi-entry strategies, all entries must be either above or below the stop loss")
		}
		if allAbove {
			dir = Long
			sort.Sort(sort.Reverse(sort.Float64Slice(ordered)))
		} else {
			dir = Short
			sort.Float64s(ordered)
		}
	}

	weights, err := s.Weights(n)
	if err != nil {
		return Resolution{}, err
	}

	var eff float64
	switch s {
	case SingleEntry:
		eff = ordered[0]
	case EqualDCA:
		sum := 0.0
		for _, e := range ordered {
			sum += e
		}
		eff = sum / float64(n)
	case Exponential:
		weighted, sumW := 0.0, 0.0
		for i, e := range ordered {
			weighted += e * weights[i]
			sumW += weights[i]
		}
		eff = weighted / sumW
	default:
		return Resolution{}, invalid("strategy", "unknown entry strategy %d", int(s))
	}

	if math.Abs(eff-stopLoss) < EntryEpsilon {
		return Resolution{}, invalid("entries", "entry price equals stop loss, risk is undefined")
	}
	if n == 1 {
		dir = Long
		if eff < stopLoss {
			dir = Short
		}
	}

	return Resolution{
		Strategy:       s,
		Direction:      dir,
		StopLoss:       stopLoss,
		EffectiveEntry: eff,
		Entries:        ordered,
		Weights:        weights,
	}, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
