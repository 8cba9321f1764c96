package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const selectCalculation = `
	SELECT id, created_at, kind, strategy, direction, balance, risk_fraction, stop_loss, effective_entry, entries,
	       position_size_usd, total_shares, total_risk_usd, take_profits, total_profit, risk_reward, report
	FROM calculations`

type scanner interface {
	Scan(dest ...any) error
}

func scanCalculation(s scanner) (CalculationRecord, error) {
	var rec CalculationRecord
	err := s.Scan(
		&rec.ID,
		&rec.CreatedAt,
		&rec.Kind,
		&rec.Strategy,
		&rec.Direction,
		&rec.Balance,
		&rec.RiskFraction,
		&rec.StopLoss,
		&rec.EffectiveEntry,
		&rec.Entries,
		&rec.PositionSizeUSD,
		&rec.TotalShares,
		&rec.TotalRiskUSD,
		&rec.TakeProfits,
		&rec.TotalProfit,
		&rec.RiskReward,
		&rec.Report,
	)
	return rec, err
}

// GetCalculation returns a single calculation by ID.
func (j *SQLite) GetCalculation(id string) (CalculationRecord, error) {
	rec, err := scanCalculation(j.db.QueryRow(selectCalculation+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CalculationRecord{}, fmt.Errorf("calculation %q not found", id)
		}
		return CalculationRecord{}, err
	}
	return rec, nil
}

// ListCalculationsBetween returns calculations created within [start, end).
func (j *SQLite) ListCalculationsBetween(start, end time.Time) ([]CalculationRecord, error) {
	rows, err := j.db.Query(selectCalculation+`
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at ASC, id ASC`, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CalculationRecord
	for rows.Next() {
		rec, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
