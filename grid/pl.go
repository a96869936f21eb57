package grid

// BasketPL marks the whole basket at markPrice: (mark - avg) * lot *
// contract size, signed by direction.
func BasketPL(markPrice, avgPrice, totalLot, contractSize float64, d Direction) float64 {
	return (markPrice - avgPrice) * totalLot * contractSize * d.Sign()
}

// OrderPL marks a single fill at markPrice using its own entry and lot.
func OrderPL(markPrice, entryPrice, lot, contractSize float64, d Direction) float64 {
	return (markPrice - entryPrice) * lot * contractSize * d.Sign()
}
