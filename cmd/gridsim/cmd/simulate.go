package cmd

import (
	"fmt"

	"github.com/rustyeddy/gridsim/config"
	"github.com/rustyeddy/gridsim/grid"
	"github.com/rustyeddy/gridsim/internal/id"
	"github.com/rustyeddy/gridsim/journal"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one grid simulation and print the position table",
	Long: `Simulate builds the order ladder, fills it down to the boundary price,
applies the hedge stop-loss if configured, and prints every filled
position plus the aggregate summary.

Examples:
  gridsim simulate --entry 2000 --boundary 1950 --step 10 --lot 0.01 --mult 1.4
  gridsim simulate --config grid.yaml --db runs.sqlite`,
	RunE: runSimulate,
}

var (
	simConfigPath string

	simEntry     float64
	simBoundary  float64
	simStep      float64
	simLot       float64
	simMult      float64
	simDirection string
	simContract  float64
	simDynamic   bool

	simHedge      bool
	simHedgeSL    float64
	simHedgeMult  float64
	simHedgeExp   float64
	simWinMode    bool
	simWinTarget  float64

	simDBPath   string
	simRunsCSV  string
	simPosCSV   string
)

func init() {
	rootCmd.AddCommand(simulateCmd)
	addEngineFlags(simulateCmd)

	simulateCmd.Flags().StringVar(&simDBPath, "db", "", "journal the run to this SQLite DB")
	simulateCmd.Flags().StringVar(&simRunsCSV, "runs-csv", "", "journal run summaries to this CSV file")
	simulateCmd.Flags().StringVar(&simPosCSV, "positions-csv", "", "journal positions to this CSV file")
}

func addEngineFlags(c *cobra.Command) {
	c.Flags().StringVarP(&simConfigPath, "config", "c", "", "load engine input from a YAML/JSON config file")

	c.Flags().Float64VarP(&simEntry, "entry", "e", 2000, "entry price")
	c.Flags().Float64VarP(&simBoundary, "boundary", "b", 1950, "worst-case boundary price")
	c.Flags().Float64VarP(&simStep, "step", "s", 10, "price distance between rungs")
	c.Flags().Float64VarP(&simLot, "lot", "l", 0.01, "initial lot size")
	c.Flags().Float64VarP(&simMult, "mult", "m", 1.4, "lot multiplier per rung")
	c.Flags().StringVarP(&simDirection, "direction", "d", "long", "trade direction (long, short)")
	c.Flags().Float64Var(&simContract, "contract", 100, "contract size")
	c.Flags().BoolVar(&simDynamic, "dynamic", false, "interleave dynamic half-step rungs")

	c.Flags().BoolVar(&simHedge, "hedge", false, "enable the hedge stop-loss")
	c.Flags().Float64Var(&simHedgeSL, "hedge-sl", -500, "hedge stop-loss amount (must be negative to trigger)")
	c.Flags().Float64Var(&simHedgeMult, "hedge-mult", 2, "hedge lot multiplier")
	c.Flags().Float64Var(&simHedgeExp, "hedge-exp", 0, "hedge stop-loss expansion multiplier (reserved)")

	c.Flags().BoolVar(&simWinMode, "win", false, "re-mark positions at a profit-target exit instead of the boundary")
	c.Flags().Float64Var(&simWinTarget, "win-target", 0, "profit-target distance for win mode")
}

// engineInput resolves the run configuration: a --config file when
// given (its journal section applies too), flags otherwise.
func engineInput() (grid.Input, *config.Config, error) {
	if simConfigPath != "" {
		cfg, err := config.LoadFromFile(simConfigPath)
		if err != nil {
			return grid.Input{}, nil, err
		}
		return cfg.ToInput(), cfg, nil
	}

	dir, err := grid.ParseDirection(simDirection)
	if err != nil {
		return grid.Input{}, nil, err
	}

	return grid.Input{
		EntryPrice:    simEntry,
		BoundaryPrice: simBoundary,
		Step:          simStep,
		InitialLot:    simLot,
		LotMultiplier: simMult,
		Direction:     dir,
		ContractSize:  simContract,

		UseDynamicLadder: simDynamic,
		Hedge: grid.HedgeConfig{
			Enabled:                     simHedge,
			StopLossAmount:              simHedgeSL,
			LotMultiplier:               simHedgeMult,
			StopLossExpansionMultiplier: simHedgeExp,
		},

		WinMode:              simWinMode,
		TargetProfitDistance: simWinTarget,
	}, nil, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	in, cfg, err := engineInput()
	if err != nil {
		return err
	}

	res := grid.Run(in)
	printResult(in, res)

	return journalRun(cfg, in, res)
}

// openJournal picks the journal destination: explicit flags win, then
// the config file's journal section, then none.
func openJournal(cfg *config.Config) (journal.Journal, error) {
	switch {
	case simDBPath != "":
		return journal.NewSQLite(simDBPath)
	case simRunsCSV != "" && simPosCSV != "":
		return journal.NewCSV(simRunsCSV, simPosCSV)
	}

	if cfg == nil {
		return nil, nil
	}
	switch cfg.Journal.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	case "csv":
		return journal.NewCSV(cfg.Journal.RunsFile, cfg.Journal.PositionsFile)
	}
	return nil, nil
}

func journalRun(cfg *config.Config, in grid.Input, res grid.Result) error {
	j, err := openJournal(cfg)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	if j == nil {
		return nil
	}
	defer j.Close()

	runID := id.New()
	if err := journal.RecordResult(j, runID, in, res); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	fmt.Printf("\nJournaled run %s\n", runID)
	return nil
}

func printResult(in grid.Input, res grid.Result) {
	if len(res.Positions) == 0 {
		fmt.Println("No positions filled (null simulation).")
		return
	}

	fmt.Printf("%-8s %-6s %12s %8s %10s %12s %12s %12s\n",
		"KIND", "LABEL", "PRICE", "LOT", "TOTAL", "AVG", "INDIV P/L", "CUM P/L")
	for _, p := range res.Positions {
		fmt.Printf("%-8s %-6s %12.2f %8.2f %10.2f %12.2f %12.2f %12.2f\n",
			p.Kind, p.Label, p.Price, p.Lot, p.TotalLotAfter, p.AvgPriceAfter,
			p.IndividualPnL, p.CumulativePnL)
	}

	s := res.Summary
	fmt.Printf("\nSummary (%s %.2f -> %.2f)\n", in.Direction, in.EntryPrice, in.BoundaryPrice)
	fmt.Printf("  Filled Orders: %d\n", s.FilledOrderCount)
	fmt.Printf("  Gross Average: %.2f (breakeven distance %.2f)\n", s.GrossAveragePrice, s.BreakevenDistance)
	fmt.Printf("  Net Average:   %.2f (recovery gap %.2f)\n", s.NetAveragePrice, s.RecoveryGap)
	fmt.Printf("  Total Lot: %.2f  Hedge Lot: %.2f  Net Lot: %.2f\n", s.TotalLot, s.HedgeLot, s.NetLot)
	fmt.Printf("  Main P/L: %.2f  Hedge P/L: %.2f  Net P/L: %.2f\n", s.MainPnL, s.HedgePnL, s.NetPnL)
	if s.IsHedged {
		fmt.Printf("  Hedged at %.2f\n", *s.HedgeTriggerPrice)
	}
}
