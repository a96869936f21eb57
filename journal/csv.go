// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	runs      *csv.Writer
	positions *csv.Writer
	rf, pf    *os.File
}

func NewCSV(runsPath, positionsPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	pf, err := os.Create(positionsPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	pw := csv.NewWriter(pf)

	if err := rw.Write([]string{"run_id", "time", "direction", "entry_price", "boundary_price", "step", "initial_lot", "lot_multiplier", "contract_size", "filled_orders", "gross_avg_price", "net_avg_price", "total_lot", "hedge_lot", "net_lot", "main_pnl", "hedge_pnl", "net_pnl", "range_covered", "breakeven_distance", "recovery_gap", "hedged", "hedge_trigger_price"}); err != nil {
		return nil, err
	}
	if err := pw.Write([]string{"run_id", "seq", "kind", "label", "price", "lot", "total_lot_after", "avg_price_after", "distance_from_entry", "individual_pnl", "cumulative_pnl"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	pw.Flush()
	if err := pw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, pw, rf, pf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Time.Format(time.RFC3339),
		r.Direction,
		f(r.EntryPrice),
		f(r.BoundaryPrice),
		f(r.Step),
		f(r.InitialLot),
		f(r.LotMultiplier),
		f(r.ContractSize),
		strconv.Itoa(r.FilledOrders),
		f(r.GrossAvgPrice),
		f(r.NetAvgPrice),
		f(r.TotalLot),
		f(r.HedgeLot),
		f(r.NetLot),
		f(r.MainPnL),
		f(r.HedgePnL),
		f(r.NetPnL),
		f(r.RangeCovered),
		f(r.BreakevenDistance),
		f(r.RecoveryGap),
		strconv.FormatBool(r.Hedged),
		f(r.HedgeTriggerPrice),
	})
	if err != nil {
		return err
	}

	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordPosition(p PositionRecord) error {
	err := j.positions.Write([]string{
		p.RunID,
		strconv.Itoa(p.Seq),
		p.Kind,
		p.Label,
		f(p.Price),
		f(p.Lot),
		f(p.TotalLotAfter),
		f(p.AvgPriceAfter),
		f(p.DistanceFromEntry),
		f(p.IndividualPnL),
		f(p.CumulativePnL),
	})
	if err != nil {
		return err
	}

	j.positions.Flush()
	return j.positions.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.positions.Flush()
	if err := j.positions.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	if err := j.pf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
