package journal

import (
	"time"

	"github.com/rustyeddy/gridsim/grid"
)

// RunRecord is one simulation run: its input tuple plus the aggregate
// summary, flattened for storage.
type RunRecord struct {
	RunID string
	Time  time.Time

	Direction     string
	EntryPrice    float64
	BoundaryPrice float64
	Step          float64
	InitialLot    float64
	LotMultiplier float64
	ContractSize  float64

	FilledOrders      int
	GrossAvgPrice     float64
	NetAvgPrice       float64
	TotalLot          float64
	HedgeLot          float64
	NetLot            float64
	MainPnL           float64
	HedgePnL          float64
	NetPnL            float64
	RangeCovered      float64
	BreakevenDistance float64
	RecoveryGap       float64
	Hedged            bool
	HedgeTriggerPrice float64 // 0 when not hedged
}

// PositionRecord is one filled rung (or the hedge) of a recorded run.
// Seq preserves processing order.
type PositionRecord struct {
	RunID string
	Seq   int

	Kind              string
	Label             string
	Price             float64
	Lot               float64
	TotalLotAfter     float64
	AvgPriceAfter     float64
	DistanceFromEntry float64
	IndividualPnL     float64
	CumulativePnL     float64
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordPosition(PositionRecord) error
	Close() error
}

// RecordResult flattens one engine result into a run record plus one
// position record per fill and writes them through j.
func RecordResult(j Journal, runID string, in grid.Input, res grid.Result) error {
	s := res.Summary

	rec := RunRecord{
		RunID: runID,
		Time:  time.Now().UTC(),

		Direction:     in.Direction.String(),
		EntryPrice:    in.EntryPrice,
		BoundaryPrice: in.BoundaryPrice,
		Step:          in.Step,
		InitialLot:    in.InitialLot,
		LotMultiplier: in.LotMultiplier,
		ContractSize:  in.ContractSize,

		FilledOrders:      s.FilledOrderCount,
		GrossAvgPrice:     s.GrossAveragePrice,
		NetAvgPrice:       s.NetAveragePrice,
		TotalLot:          s.TotalLot,
		HedgeLot:          s.HedgeLot,
		NetLot:            s.NetLot,
		MainPnL:           s.MainPnL,
		HedgePnL:          s.HedgePnL,
		NetPnL:            s.NetPnL,
		RangeCovered:      s.RangeCovered,
		BreakevenDistance: s.BreakevenDistance,
		RecoveryGap:       s.RecoveryGap,
		Hedged:            s.IsHedged,
	}
	if s.HedgeTriggerPrice != nil {
		rec.HedgeTriggerPrice = *s.HedgeTriggerPrice
	}

	if err := j.RecordRun(rec); err != nil {
		return err
	}

	for i, p := range res.Positions {
		if err := j.RecordPosition(PositionRecord{
			RunID: runID,
			Seq:   i,

			Kind:              string(p.Kind),
			Label:             p.Label,
			Price:             p.Price,
			Lot:               p.Lot,
			TotalLotAfter:     p.TotalLotAfter,
			AvgPriceAfter:     p.AvgPriceAfter,
			DistanceFromEntry: p.DistanceFromEntry,
			IndividualPnL:     p.IndividualPnL,
			CumulativePnL:     p.CumulativePnL,
		}); err != nil {
			return err
		}
	}
	return nil
}
