package grid

import "math"

// basket is the running state of the accumulation walk. costBasis keeps
// the unrounded sum of price*lot; only totalLot is rounded.
type basket struct {
	totalLot  float64
	costBasis float64
	avgPrice  float64
	hedge     hedgeState
}

// accumulate walks the sorted ladder and fills rungs until the boundary
// is passed or the hedge fires. After the walk a final check at the
// boundary price catches adverse moves that jump past every discrete
// rung.
func accumulate(in Input, ladder []Order) ([]Position, basket) {
	b := basket{avgPrice: in.EntryPrice}
	positions := make([]Position, 0, len(ladder))

	for _, o := range ladder {
		if passedBoundary(o.Price, in.BoundaryPrice, in.Direction) {
			break
		}

		// Would the basket loss at this rung's price already breach the
		// stop? Then the hedge opens and the rung itself never fills.
		if canTrigger(in, b) &&
			BasketPL(o.Price, b.avgPrice, b.totalLot, in.ContractSize, in.Direction) <= in.Hedge.StopLossAmount {
			positions = append(positions, openHedge(in, &b))
			break
		}

		// A lot that rounded away fills nothing; skipping it keeps the
		// average well defined while totalLot is still zero.
		if o.Lot <= 0 {
			continue
		}

		b.totalLot = RoundLot(b.totalLot + o.Lot)
		b.costBasis += o.Price * o.Lot
		b.avgPrice = b.costBasis / b.totalLot

		positions = append(positions, Position{
			Order:             o,
			TotalLotAfter:     b.totalLot,
			AvgPriceAfter:     b.avgPrice,
			DistanceFromEntry: math.Abs(in.EntryPrice - o.Price),
			CumulativePnL:     BasketPL(o.Price, b.avgPrice, b.totalLot, in.ContractSize, in.Direction),
			IndividualPnL:     OrderPL(in.BoundaryPrice, o.Price, o.Lot, in.ContractSize, in.Direction),
		})
	}

	if canTrigger(in, b) &&
		BasketPL(in.BoundaryPrice, b.avgPrice, b.totalLot, in.ContractSize, in.Direction) <= in.Hedge.StopLossAmount {
		positions = append(positions, openHedge(in, &b))
	}

	return positions, b
}

// passedBoundary reports whether price lies strictly beyond the boundary
// in the adverse direction.
func passedBoundary(price, boundary float64, d Direction) bool {
	if d == Short {
		return price > boundary
	}
	return price < boundary
}

func canTrigger(in Input, b basket) bool {
	return in.Hedge.Enabled &&
		!b.hedge.triggered &&
		in.Hedge.StopLossAmount < 0 &&
		b.totalLot > 0
}
