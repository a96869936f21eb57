// Package solve inverts the grid engine: given a target breakeven price
// or a target floating P/L, it bisects the boundary distance until a
// full engine run at that distance hits the target.
//
// Both solvers assume the objective is monotonic in distance, which
// holds for a plain geometric ladder; a hedge or unusual multiplier can
// break it. Solution.Converged is false when the iteration budget ran
// out with the residual above tolerance, so callers can surface a
// warning instead of trusting the root.
package solve

import (
	"math"

	"github.com/rustyeddy/gridsim/grid"
)

const (
	// MinDistance and MaxDistance bound the searched boundary distance.
	MinDistance = 0.1
	MaxDistance = 5000.0

	// Iterations is the fixed bisection budget; exactness is traded for
	// bounded, predictable latency.
	Iterations = 30

	breakevenTol = 0.5  // price units
	pnlTol       = 10.0 // currency units
)

// Solution is a solver result. Ok is false when the target was rejected
// and nothing ran. The caller re-runs the engine at Boundary to obtain
// the full result for display.
type Solution struct {
	Distance   float64
	Boundary   float64
	Objective  float64
	Residual   float64
	Iterations int
	Ok         bool
	Converged  bool
}

// Breakeven searches for the boundary distance at which the resulting
// average price (net average when hedged, gross otherwise) reaches
// target. Non-positive or non-finite targets are a no-op.
func Breakeven(in grid.Input, target float64) Solution {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return Solution{}
	}
	sign := in.Direction.Sign()
	return bisect(in, target, breakevenTol,
		func(s grid.Summary) float64 {
			if s.IsHedged {
				return s.NetAveragePrice
			}
			return s.GrossAveragePrice
		},
		func(residual float64) bool {
			// A long average falls as the ladder deepens, a short
			// average rises; widen while it is still entry-side of the
			// target.
			return residual*sign > 0
		})
}

// TargetPnL searches for the boundary distance at which the run's net
// P/L at the boundary reaches target. Non-finite targets are a no-op.
func TargetPnL(in grid.Input, target float64) Solution {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return Solution{}
	}
	return bisect(in, target, pnlTol,
		func(s grid.Summary) float64 { return s.NetPnL },
		func(residual float64) bool {
			// Deeper ladders lose more; widen while the loss is still
			// shallower than the target.
			return residual > 0
		})
}

func bisect(in grid.Input, target, tol float64, objective func(grid.Summary) float64, widen func(residual float64) bool) Solution {
	lo, hi := MinDistance, MaxDistance
	sign := in.Direction.Sign()
	sol := Solution{Ok: true}

	for i := 0; i < Iterations; i++ {
		mid := (lo + hi) / 2
		probe := in
		probe.BoundaryPrice = in.EntryPrice - mid*sign

		res := grid.Run(probe)
		obj := objective(res.Summary)

		sol.Distance = mid
		sol.Boundary = probe.BoundaryPrice
		sol.Objective = obj
		sol.Residual = obj - target
		sol.Iterations = i + 1

		if math.Abs(sol.Residual) < tol {
			sol.Converged = true
			return sol
		}
		if widen(sol.Residual) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return sol
}
