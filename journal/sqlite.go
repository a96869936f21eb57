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
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, time, direction, entry_price, boundary_price, step, initial_lot,
		 lot_multiplier, contract_size, filled_orders, gross_avg_price, net_avg_price,
		 total_lot, hedge_lot, net_lot, main_pnl, hedge_pnl, net_pnl,
		 range_covered, breakeven_distance, recovery_gap, hedged, hedge_trigger_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Time, r.Direction, r.EntryPrice, r.BoundaryPrice, r.Step, r.InitialLot,
		r.LotMultiplier, r.ContractSize, r.FilledOrders, r.GrossAvgPrice, r.NetAvgPrice,
		r.TotalLot, r.HedgeLot, r.NetLot, r.MainPnL, r.HedgePnL, r.NetPnL,
		r.RangeCovered, r.BreakevenDistance, r.RecoveryGap, r.Hedged, r.HedgeTriggerPrice,
	)
	return err
}

func (j *SQLite) RecordPosition(p PositionRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO positions
		(run_id, seq, kind, label, price, lot, total_lot_after, avg_price_after,
		 distance_from_entry, individual_pnl, cumulative_pnl)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.RunID, p.Seq, p.Kind, p.Label, p.Price, p.Lot, p.TotalLotAfter, p.AvgPriceAfter,
		p.DistanceFromEntry, p.IndividualPnL, p.CumulativePnL,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
