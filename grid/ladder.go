package grid

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// MaxOrders caps ladder size. A runaway configuration (tiny step over a
// huge range) truncates here rather than failing.
const MaxOrders = 3000

// BuildLadder generates the candidate rungs for the configured range,
// nearest to entry first. The rung count deliberately overshoots the
// boundary by ten steps; the accumulator, not the generator, decides the
// true cutoff. Pure and deterministic; returns nil for degenerate inputs.
func BuildLadder(in Input) []Order {
	if in.Step <= 0 || in.InitialLot <= 0 {
		return nil
	}

	span := math.Abs(in.EntryPrice - in.BoundaryPrice)
	n := int(math.Ceil(span/in.Step)) + 10
	if n > MaxOrders {
		n = MaxOrders
	}

	sign := in.Direction.Sign()
	orders := make([]Order, 0, n)

	for i := 0; i < n; i++ {
		kind := KindMain
		if i == 0 {
			kind = KindEntry
		}
		orders = append(orders, Order{
			Kind:  kind,
			Label: strconv.Itoa(i),
			Price: in.EntryPrice - float64(i)*in.Step*sign,
			Lot:   RoundLot(in.InitialLot * math.Pow(in.LotMultiplier, float64(i))),
		})
	}

	if in.UseDynamicLadder {
		// Extra rungs halfway between mains, one multiplier step ahead,
		// labeled with a fractional index.
		for i := 0; i < n; i++ {
			offset := float64(i)*in.Step + 1.5*in.Step
			orders = append(orders, Order{
				Kind:  KindDynamic,
				Label: fmt.Sprintf("%.1f", float64(i)+1.5),
				Price: in.EntryPrice - offset*sign,
				Lot:   RoundLot(in.InitialLot * math.Pow(in.LotMultiplier, float64(i+2))),
			})
		}
	}

	sort.SliceStable(orders, func(a, b int) bool {
		return math.Abs(orders[a].Price-in.EntryPrice) < math.Abs(orders[b].Price-in.EntryPrice)
	})

	if len(orders) > MaxOrders {
		orders = orders[:MaxOrders]
	}
	return orders
}
