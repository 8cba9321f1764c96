// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	kind TEXT NOT NULL,
	strategy TEXT NOT NULL,
	direction TEXT NOT NULL,
	balance REAL NOT NULL,
	risk_fraction REAL NOT NULL,
	stop_loss REAL NOT NULL,
	effective_entry REAL NOT NULL,
	entries TEXT NOT NULL,
	position_size_usd REAL NOT NULL,
	total_shares REAL NOT NULL,
	total_risk_usd REAL NOT NULL,
	take_profits INTEGER NOT NULL,
	total_profit REAL NOT NULL,
	risk_reward REAL NOT NULL,
	report TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created_at);
`
