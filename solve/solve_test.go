package solve

import (
	"math"
	"testing"

	"github.com/rustyeddy/gridsim/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() grid.Input {
	return grid.Input{
		EntryPrice:    2000,
		BoundaryPrice: 1950,
		Step:          10,
		InitialLot:    0.01,
		LotMultiplier: 1.4,
		Direction:     grid.Long,
		ContractSize:  100,
	}
}

func TestBreakevenConverges(t *testing.T) {
	in := baseInput()
	sol := Breakeven(in, 1980)

	require.True(t, sol.Ok)
	assert.True(t, sol.Converged, "residual %v after %d iterations", sol.Residual, sol.Iterations)
	assert.Greater(t, sol.Distance, 0.0)
	assert.Less(t, sol.Boundary, in.EntryPrice)

	// Re-running the engine at the solved boundary reproduces the target.
	in.BoundaryPrice = sol.Boundary
	res := grid.Run(in)
	assert.InDelta(t, 1980, res.Summary.GrossAveragePrice, 1.0)
}

func TestBreakevenShort(t *testing.T) {
	in := baseInput()
	in.Direction = grid.Short
	in.BoundaryPrice = 2050

	sol := Breakeven(in, 2020)
	require.True(t, sol.Ok)
	assert.True(t, sol.Converged)
	assert.Greater(t, sol.Boundary, in.EntryPrice)

	in.BoundaryPrice = sol.Boundary
	res := grid.Run(in)
	assert.InDelta(t, 2020, res.Summary.GrossAveragePrice, 1.0)
}

func TestBreakevenRejectsBadTargets(t *testing.T) {
	for _, target := range []float64{0, -1980, math.NaN(), math.Inf(1)} {
		sol := Breakeven(baseInput(), target)
		assert.False(t, sol.Ok, "target %v must be a no-op", target)
		assert.Zero(t, sol.Iterations)
	}
}

func TestTargetPnLConverges(t *testing.T) {
	in := baseInput()
	sol := TargetPnL(in, -1000)

	require.True(t, sol.Ok)
	assert.True(t, sol.Converged, "residual %v after %d iterations", sol.Residual, sol.Iterations)

	in.BoundaryPrice = sol.Boundary
	res := grid.Run(in)
	assert.InDelta(t, -1000, res.Summary.NetPnL, 10.0)
}

func TestTargetPnLRejectsNonNumeric(t *testing.T) {
	for _, target := range []float64{math.NaN(), math.Inf(-1)} {
		sol := TargetPnL(baseInput(), target)
		assert.False(t, sol.Ok, "target %v must be a no-op", target)
	}
}

func TestIterationBudget(t *testing.T) {
	// A long average can never sit above the entry price, so this
	// target burns the full budget and reports the miss instead of a
	// silently wrong root.
	sol := Breakeven(baseInput(), 3000)
	require.True(t, sol.Ok)
	assert.False(t, sol.Converged)
	assert.Equal(t, Iterations, sol.Iterations)
	assert.Greater(t, math.Abs(sol.Residual), 0.5)
}

func TestSolverDoesNotMutateInput(t *testing.T) {
	in := baseInput()
	before := in
	_ = Breakeven(in, 1980)
	_ = TargetPnL(in, -500)
	assert.Equal(t, before, in)
}
