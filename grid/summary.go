package grid

import "math"

// summarize reduces the final position list into aggregate metrics.
// An empty run keeps the all-zero summary.
func summarize(in Input, positions []Position, b basket) Summary {
	var s Summary
	if len(positions) == 0 {
		return s
	}

	for _, p := range positions {
		if p.Kind == KindHedge {
			s.HedgePnL += p.IndividualPnL
			continue
		}
		s.FilledOrderCount++
		s.MainPnL += p.IndividualPnL
	}
	s.NetPnL = s.MainPnL + s.HedgePnL

	s.GrossAveragePrice = b.avgPrice
	s.TotalLot = b.totalLot
	s.RangeCovered = math.Abs(in.EntryPrice - in.BoundaryPrice)
	s.BreakevenDistance = math.Abs(in.EntryPrice - s.GrossAveragePrice)

	if b.hedge.triggered {
		s.IsHedged = true
		trigger := b.hedge.triggerPrice
		s.HedgeTriggerPrice = &trigger
		s.HedgeLot = b.hedge.lot
		s.NetLot = b.hedge.netLot
		s.NetAveragePrice = b.hedge.netAvg
	} else {
		s.NetLot = b.totalLot
		s.NetAveragePrice = b.avgPrice
	}

	if b.hedge.netted {
		// Flat after the hedge: no breakeven left to recover to.
		s.RecoveryGap = 0
	} else {
		s.RecoveryGap = math.Abs(in.BoundaryPrice - s.NetAveragePrice)
	}

	return s
}
