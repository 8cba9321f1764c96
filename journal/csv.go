package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "created_at", "kind", "strategy", "direction", "balance", "risk_fraction", "stop_loss",
	"effective_entry", "entries", "position_size_usd", "total_shares", "total_risk_usd",
	"take_profits", "total_profit", "risk_reward",
}

// CSV appends calculations to a single file. The header is written only when
// the file is new or empty.
type CSV struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSV, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			_ = f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) RecordCalculation(c CalculationRecord) error {
	err := j.w.Write([]string{
		c.ID,
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.Kind,
		c.Strategy,
		c.Direction,
		f(c.Balance),
		f(c.RiskFraction),
		f(c.StopLoss),
		f(c.EffectiveEntry),
		c.Entries,
		f(c.PositionSizeUSD),
		f(c.TotalShares),
		f(c.TotalRiskUSD),
		strconv.Itoa(c.TakeProfits),
		f(c.TotalProfit),
		f(c.RiskReward),
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
