package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/gridsim/config"
	"github.com/rustyeddy/gridsim/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csvConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Journal.Type = "csv"
	cfg.Journal.RunsFile = filepath.Join(dir, "runs.csv")
	cfg.Journal.PositionsFile = filepath.Join(dir, "positions.csv")
	return cfg
}

func TestJournalRunUsesConfigSection(t *testing.T) {
	simDBPath, simRunsCSV, simPosCSV = "", "", ""

	cfg := csvConfig(t.TempDir())
	in := cfg.ToInput()
	require.NoError(t, journalRun(cfg, in, grid.Run(in)))

	for _, path := range []string{cfg.Journal.RunsFile, cfg.Journal.PositionsFile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestJournalFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	simDBPath = filepath.Join(dir, "flag.sqlite")
	simRunsCSV, simPosCSV = "", ""
	defer func() { simDBPath = "" }()

	cfg := csvConfig(dir)
	in := cfg.ToInput()
	require.NoError(t, journalRun(cfg, in, grid.Run(in)))

	_, err := os.Stat(simDBPath)
	require.NoError(t, err)
	_, err = os.Stat(cfg.Journal.RunsFile)
	assert.True(t, os.IsNotExist(err), "config paths must not be used when a flag is set")
}

func TestJournalRunNoDestination(t *testing.T) {
	simDBPath, simRunsCSV, simPosCSV = "", "", ""

	in := config.Default().ToInput()
	require.NoError(t, journalRun(nil, in, grid.Run(in)))
}
