package grid

import (
	"fmt"
	"math"
	"strings"
)

// Direction is the side of the basket. +1 long, -1 short, matching the
// sign conventions used throughout the P/L math.
type Direction int

const (
	Long  Direction = 1
	Short Direction = -1
)

func (d Direction) Sign() float64 {
	if d == Short {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == Short {
		return "SHORT"
	}
	return "LONG"
}

// ParseDirection maps a config/CLI string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG", "BUY":
		return Long, nil
	case "SHORT", "SELL":
		return Short, nil
	default:
		return 0, fmt.Errorf("unknown direction %q (want long or short)", s)
	}
}

// OrderKind labels how an order entered the simulation.
type OrderKind string

const (
	KindEntry   OrderKind = "ENTRY"
	KindMain    OrderKind = "MAIN"
	KindDynamic OrderKind = "DYNAMIC"
	KindHedge   OrderKind = "HEDGE"
)

// Order is a candidate rung on the ladder. Orders are immutable once
// built; the accumulator decides which of them actually fill.
type Order struct {
	Kind  OrderKind
	Label string
	Price float64
	Lot   float64
}

// Position is an Order that filled, extended with the basket state
// recorded at fill time. CumulativePnL is marked at the position's own
// price (the loss staircase); IndividualPnL is marked at the boundary
// price, or at the win-mode exit price when that overlay is applied.
type Position struct {
	Order

	TotalLotAfter     float64
	AvgPriceAfter     float64
	DistanceFromEntry float64
	IndividualPnL     float64
	CumulativePnL     float64
}

// HedgeConfig controls the offsetting stop-loss position. StopLossAmount
// is a loss threshold and only meaningful when negative; a zero or
// positive value disables triggering even when Enabled is set.
// StopLossExpansionMultiplier is accepted and carried through
// configuration but is not consulted by the trigger or pricing math.
type HedgeConfig struct {
	Enabled                     bool
	StopLossAmount              float64
	LotMultiplier               float64
	StopLossExpansionMultiplier float64
}

// RoundLot rounds a lot size to the hundredth, the resolution every lot
// in the simulation is stored and compared at.
func RoundLot(lot float64) float64 {
	return math.Round(lot*100) / 100
}
