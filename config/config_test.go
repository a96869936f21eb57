package config

import (
	"path/filepath"
	"testing"

	"github.com/rustyeddy/gridsim/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestRoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")

	cfg := Default()
	cfg.Trade.Direction = "short"
	cfg.Trade.BoundaryPrice = 2050
	cfg.Hedge.Enabled = true
	cfg.Hedge.StopLossExpansionMultiplier = 2

	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestRoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejections(t *testing.T) {
	cases := map[string]func(*Config){
		"bad direction":      func(c *Config) { c.Trade.Direction = "sideways" },
		"zero entry":         func(c *Config) { c.Trade.EntryPrice = 0 },
		"zero contract":      func(c *Config) { c.Trade.ContractSize = 0 },
		"zero step":          func(c *Config) { c.Ladder.Step = 0 },
		"zero lot":           func(c *Config) { c.Ladder.InitialLot = 0 },
		"zero multiplier":    func(c *Config) { c.Ladder.LotMultiplier = 0 },
		"bad journal type":   func(c *Config) { c.Journal.Type = "parquet" },
		"csv without files":  func(c *Config) { c.Journal.Type = "csv"; c.Journal.RunsFile = "" },
		"sqlite without db":  func(c *Config) { c.Journal.Type = "sqlite"; c.Journal.DBPath = "" },
		"negative target":    func(c *Config) { c.Exit.TargetProfitDistance = -1 },
		"hedge without mult": func(c *Config) { c.Hedge.Enabled = true; c.Hedge.LotMultiplier = 0 },
	}

	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		assert.Error(t, cfg.Validate(), name)
	}
}

func TestToInput(t *testing.T) {
	cfg := Default()
	cfg.Trade.Direction = "short"
	cfg.Ladder.Dynamic = true
	cfg.Hedge.Enabled = true

	in := cfg.ToInput()
	assert.Equal(t, grid.Short, in.Direction)
	assert.True(t, in.UseDynamicLadder)
	assert.True(t, in.Hedge.Enabled)
	assert.Equal(t, cfg.Trade.EntryPrice, in.EntryPrice)
	assert.Equal(t, cfg.Ladder.Step, in.Step)
	assert.True(t, in.Valid())
}
