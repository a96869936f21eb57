package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rustyeddy/gridsim/grid"
	"gopkg.in/yaml.v3"
)

// Config represents a complete grid simulation configuration
type Config struct {
	Trade   TradeConfig   `json:"trade" yaml:"trade"`
	Ladder  LadderConfig  `json:"ladder" yaml:"ladder"`
	Hedge   HedgeConfig   `json:"hedge" yaml:"hedge"`
	Exit    ExitConfig    `json:"exit" yaml:"exit"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
}

// TradeConfig contains the trade-level parameters
type TradeConfig struct {
	EntryPrice    float64 `json:"entry_price" yaml:"entry_price"`
	BoundaryPrice float64 `json:"boundary_price" yaml:"boundary_price"`
	Direction     string  `json:"direction" yaml:"direction"` // "long" or "short"
	ContractSize  float64 `json:"contract_size" yaml:"contract_size"`
}

// LadderConfig contains the ladder construction parameters
type LadderConfig struct {
	Step          float64 `json:"step" yaml:"step"`
	InitialLot    float64 `json:"initial_lot" yaml:"initial_lot"`
	LotMultiplier float64 `json:"lot_multiplier" yaml:"lot_multiplier"`
	Dynamic       bool    `json:"dynamic,omitempty" yaml:"dynamic,omitempty"`
}

// HedgeConfig contains the hedge stop-loss parameters.
// stop_loss_expansion_multiplier is carried in the configuration but is
// not consulted by the current trigger or pricing math.
type HedgeConfig struct {
	Enabled                     bool    `json:"enabled" yaml:"enabled"`
	StopLossAmount              float64 `json:"stop_loss_amount" yaml:"stop_loss_amount"`
	LotMultiplier               float64 `json:"lot_multiplier" yaml:"lot_multiplier"`
	StopLossExpansionMultiplier float64 `json:"stop_loss_expansion_multiplier,omitempty" yaml:"stop_loss_expansion_multiplier,omitempty"`
}

// ExitConfig contains the win-mode overlay parameters
type ExitConfig struct {
	WinMode              bool    `json:"win_mode,omitempty" yaml:"win_mode,omitempty"`
	TargetProfitDistance float64 `json:"target_profit_distance,omitempty" yaml:"target_profit_distance,omitempty"`
}

// JournalConfig contains run journaling parameters
type JournalConfig struct {
	Type          string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	RunsFile      string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	PositionsFile string `json:"positions_file,omitempty" yaml:"positions_file,omitempty"`
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := grid.ParseDirection(c.Trade.Direction); err != nil {
		return fmt.Errorf("trade.direction: %w", err)
	}
	if c.Trade.EntryPrice <= 0 {
		return fmt.Errorf("trade.entry_price must be positive")
	}
	if c.Trade.ContractSize <= 0 {
		return fmt.Errorf("trade.contract_size must be positive")
	}
	if c.Ladder.Step <= 0 {
		return fmt.Errorf("ladder.step must be positive")
	}
	if c.Ladder.InitialLot <= 0 {
		return fmt.Errorf("ladder.initial_lot must be positive")
	}
	if c.Ladder.LotMultiplier <= 0 {
		return fmt.Errorf("ladder.lot_multiplier must be positive")
	}
	if c.Hedge.Enabled && c.Hedge.LotMultiplier <= 0 {
		return fmt.Errorf("hedge.lot_multiplier must be positive when hedge is enabled")
	}
	if c.Exit.TargetProfitDistance < 0 {
		return fmt.Errorf("exit.target_profit_distance must not be negative")
	}
	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.PositionsFile == "" {
			return fmt.Errorf("journal runs_file and positions_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	return nil
}

// ToInput converts the configuration into an engine input. Call after
// Validate; an unparseable direction falls back to long.
func (c *Config) ToInput() grid.Input {
	dir, err := grid.ParseDirection(c.Trade.Direction)
	if err != nil {
		dir = grid.Long
	}
	return grid.Input{
		EntryPrice:    c.Trade.EntryPrice,
		BoundaryPrice: c.Trade.BoundaryPrice,
		Step:          c.Ladder.Step,
		InitialLot:    c.Ladder.InitialLot,
		LotMultiplier: c.Ladder.LotMultiplier,
		Direction:     dir,
		ContractSize:  c.Trade.ContractSize,

		UseDynamicLadder: c.Ladder.Dynamic,
		Hedge: grid.HedgeConfig{
			Enabled:                     c.Hedge.Enabled,
			StopLossAmount:              c.Hedge.StopLossAmount,
			LotMultiplier:               c.Hedge.LotMultiplier,
			StopLossExpansionMultiplier: c.Hedge.StopLossExpansionMultiplier,
		},

		WinMode:              c.Exit.WinMode,
		TargetProfitDistance: c.Exit.TargetProfitDistance,
	}
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Trade: TradeConfig{
			EntryPrice:    2000,
			BoundaryPrice: 1950,
			Direction:     "long",
			ContractSize:  100,
		},
		Ladder: LadderConfig{
			Step:          10,
			InitialLot:    0.01,
			LotMultiplier: 1.4,
		},
		Hedge: HedgeConfig{
			Enabled:        false,
			StopLossAmount: -500,
			LotMultiplier:  2,
		},
		Journal: JournalConfig{
			Type:          "csv",
			RunsFile:      "./runs.csv",
			PositionsFile: "./positions.csv",
		},
	}
}
