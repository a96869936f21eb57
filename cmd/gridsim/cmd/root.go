package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridsim",
	Short: "A martingale/DCA grid strategy simulator",
	Long: `Gridsim models a martingale/DCA ("grid") trading strategy in Go.

It provides tools for:
  - Generating order ladders from an entry price down to a worst-case boundary
  - Tracking running cost basis, breakeven and per-rung P/L as the ladder fills
  - Detecting hedge stop-loss breaches and pricing the offsetting position
  - Solving for the boundary distance that hits a target breakeven or P/L
  - Journaling runs to CSV or SQLite

Complete documentation is available at https://github.com/rustyeddy/gridsim`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
