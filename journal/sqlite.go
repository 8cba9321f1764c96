package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordCalculation(c CalculationRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO calculations
		(id, created_at, kind, strategy, direction, balance, risk_fraction, stop_loss, effective_entry, entries,
		 position_size_usd, total_shares, total_risk_usd, take_profits, total_profit, risk_reward, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CreatedAt.UTC(), c.Kind, c.Strategy, c.Direction, c.Balance, c.RiskFraction, c.StopLoss,
		c.EffectiveEntry, c.Entries, c.PositionSizeUSD, c.TotalShares, c.TotalRiskUSD,
		c.TakeProfits, c.TotalProfit, c.RiskReward, c.Report,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
