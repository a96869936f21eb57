package grid

// applyExit is the win-mode overlay: every retained position's
// IndividualPnL is re-marked at a hypothetical profit-target exit price
// instead of the boundary price. The exit sits the target distance past
// the net average when hedged, past the gross average otherwise. The
// staircase CumulativePnL values are deliberately left on their original
// basis.
func applyExit(in Input, positions []Position, b basket) {
	if in.TargetProfitDistance < 0 {
		return
	}

	base := b.avgPrice
	if b.hedge.triggered {
		// A fully netted hedge carries a zero net average, so the exit
		// sits at bare d; the flat basket has no breakeven to anchor to.
		base = b.hedge.netAvg
	}
	exit := base + in.TargetProfitDistance*in.Direction.Sign()

	for i := range positions {
		p := &positions[i]
		d := in.Direction
		if p.Kind == KindHedge {
			d = -d // the hedge is a reverse position
		}
		p.IndividualPnL = OrderPL(exit, p.Price, p.Lot, in.ContractSize, d)
	}
}
