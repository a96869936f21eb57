// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	time DATETIME NOT NULL,
	direction TEXT NOT NULL,
	entry_price REAL NOT NULL,
	boundary_price REAL NOT NULL,
	step REAL NOT NULL,
	initial_lot REAL NOT NULL,
	lot_multiplier REAL NOT NULL,
	contract_size REAL NOT NULL,
	filled_orders INTEGER NOT NULL,
	gross_avg_price REAL NOT NULL,
	net_avg_price REAL NOT NULL,
	total_lot REAL NOT NULL,
	hedge_lot REAL NOT NULL,
	net_lot REAL NOT NULL,
	main_pnl REAL NOT NULL,
	hedge_pnl REAL NOT NULL,
	net_pnl REAL NOT NULL,
	range_covered REAL NOT NULL,
	breakeven_distance REAL NOT NULL,
	recovery_gap REAL NOT NULL,
	hedged INTEGER NOT NULL,
	hedge_trigger_price REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	kind TEXT NOT NULL,
	label TEXT NOT NULL,
	price REAL NOT NULL,
	lot REAL NOT NULL,
	total_lot_after REAL NOT NULL,
	avg_price_after REAL NOT NULL,
	distance_from_entry REAL NOT NULL,
	individual_pnl REAL NOT NULL,
	cumulative_pnl REAL NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_positions_run ON positions(run_id);
`
