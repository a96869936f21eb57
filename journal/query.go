package journal

import (
	"database/sql"
	"fmt"
)

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, time, direction, entry_price, boundary_price, step, initial_lot,
		       lot_multiplier, contract_size, filled_orders, gross_avg_price, net_avg_price,
		       total_lot, hedge_lot, net_lot, main_pnl, hedge_pnl, net_pnl,
		       range_covered, breakeven_distance, recovery_gap, hedged, hedge_trigger_price
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Time,
		&rec.Direction,
		&rec.EntryPrice,
		&rec.BoundaryPrice,
		&rec.Step,
		&rec.InitialLot,
		&rec.LotMultiplier,
		&rec.ContractSize,
		&rec.FilledOrders,
		&rec.GrossAvgPrice,
		&rec.NetAvgPrice,
		&rec.TotalLot,
		&rec.HedgeLot,
		&rec.NetLot,
		&rec.MainPnL,
		&rec.HedgePnL,
		&rec.NetPnL,
		&rec.RangeCovered,
		&rec.BreakevenDistance,
		&rec.RecoveryGap,
		&rec.Hedged,
		&rec.HedgeTriggerPrice,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListPositionsByRunID returns a run's positions in processing order.
func (j *SQLite) ListPositionsByRunID(runID string) ([]PositionRecord, error) {
	rows, err := j.db.Query(`
		SELECT run_id, seq, kind, label, price, lot, total_lot_after, avg_price_after,
		       distance_from_entry, individual_pnl, cumulative_pnl
		FROM positions
		WHERE run_id = ?
		ORDER BY seq ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PositionRecord
	for rows.Next() {
		var p PositionRecord
		if err := rows.Scan(
			&p.RunID,
			&p.Seq,
			&p.Kind,
			&p.Label,
			&p.Price,
			&p.Lot,
			&p.TotalLotAfter,
			&p.AvgPriceAfter,
			&p.DistanceFromEntry,
			&p.IndividualPnL,
			&p.CumulativePnL,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRuns returns all recorded runs, newest first.
func (j *SQLite) ListRuns() ([]RunRecord, error) {
	rows, err := j.db.Query(`SELECT run_id FROM runs ORDER BY time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]RunRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := j.GetRun(id)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
