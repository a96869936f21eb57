package grid

import "math"

// fullyNettedEps guards the net-average division: when the hedge lot
// matches the basket lot this closely, the position is flat and has no
// meaningful breakeven.
const fullyNettedEps = 0.001

type hedgeState struct {
	triggered    bool
	triggerPrice float64
	lot          float64
	netLot       float64
	netAvg       float64
	netted       bool
}

// openHedge fires the one-shot hedge. Basket P/L is affine in price, so
// the exact crossing price is solved directly instead of searched:
//
//	trigger = avg + stopLoss / (totalLot * contractSize * sign)
//
// The returned hedge record carries the net basket state after the
// offsetting fill; its CumulativePnL is locked to the configured stop
// loss by definition, independent of the computed trigger price.
func openHedge(in Input, b *basket) Position {
	trigger := b.avgPrice + in.Hedge.StopLossAmount/(b.totalLot*in.ContractSize*in.Direction.Sign())
	lot := RoundLot(b.totalLot * in.Hedge.LotMultiplier)

	h := hedgeState{
		triggered:    true,
		triggerPrice: trigger,
		lot:          lot,
		netLot:       RoundLot(math.Abs(b.totalLot - lot)),
	}
	if diff := b.totalLot - lot; math.Abs(diff) > fullyNettedEps {
		h.netAvg = (b.avgPrice*b.totalLot - trigger*lot) / diff
	} else {
		h.netted = true
	}
	b.hedge = h

	return Position{
		Order: Order{
			Kind:  KindHedge,
			Label: "H",
			Price: trigger,
			Lot:   lot,
		},
		TotalLotAfter:     h.netLot,
		AvgPriceAfter:     h.netAvg,
		DistanceFromEntry: math.Abs(in.EntryPrice - trigger),
		IndividualPnL:     OrderPL(in.BoundaryPrice, trigger, lot, in.ContractSize, -in.Direction),
		CumulativePnL:     in.Hedge.StopLossAmount,
	}
}
