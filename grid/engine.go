package grid

import "math"

// Input is the full configuration of one simulation run.
type Input struct {
	EntryPrice    float64
	BoundaryPrice float64
	Step          float64
	InitialLot    float64
	LotMultiplier float64
	Direction     Direction
	ContractSize  float64

	UseDynamicLadder bool
	Hedge            HedgeConfig

	WinMode              bool
	TargetProfitDistance float64
}

// Summary aggregates a finished run.
type Summary struct {
	FilledOrderCount  int
	GrossAveragePrice float64
	NetPnL            float64
	MainPnL           float64
	HedgePnL          float64
	TotalLot          float64
	HedgeLot          float64
	NetLot            float64
	RangeCovered      float64
	BreakevenDistance float64
	RecoveryGap       float64
	NetAveragePrice   float64
	IsHedged          bool
	HedgeTriggerPrice *float64
}

// Result is the ordered fill sequence (nearest-to-entry first, hedge
// record last if one fired) plus the aggregate summary.
type Result struct {
	Positions []Position
	Summary   Summary
}

// Valid reports whether the input describes a runnable simulation.
func (in Input) Valid() bool {
	if in.Step <= 0 || in.InitialLot <= 0 || in.ContractSize <= 0 || in.LotMultiplier <= 0 {
		return false
	}
	for _, v := range []float64{in.EntryPrice, in.BoundaryPrice, in.Step, in.InitialLot, in.LotMultiplier, in.ContractSize} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Run executes the whole pipeline: ladder generation, accumulation with
// hedge detection, the optional win-mode overlay, and summary reduction.
// It never fails; invalid inputs yield the empty "null simulation"
// (no positions, all-zero summary). Pure: no I/O, no shared state, safe
// to call concurrently.
func Run(in Input) Result {
	if !in.Valid() {
		return Result{}
	}

	positions, b := accumulate(in, BuildLadder(in))

	if in.WinMode {
		applyExit(in, positions, b)
	}

	return Result{
		Positions: positions,
		Summary:   summarize(in, positions, b),
	}
}
