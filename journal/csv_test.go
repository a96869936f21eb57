package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournal(t *testing.T) {
	dir := t.TempDir()
	runsPath := filepath.Join(dir, "runs.csv")
	posPath := filepath.Join(dir, "positions.csv")

	j, err := NewCSV(runsPath, posPath)
	require.NoError(t, err)

	in, res := testRun()
	require.NoError(t, RecordResult(j, "run-csv", in, res))
	require.NoError(t, j.Close())

	runs := readCSV(t, runsPath)
	require.Len(t, runs, 2) // header + one run
	assert.Equal(t, "run_id", runs[0][0])
	assert.Equal(t, "run-csv", runs[1][0])
	assert.Equal(t, "LONG", runs[1][2])

	filled, err := strconv.Atoi(runs[1][9])
	require.NoError(t, err)
	assert.Equal(t, res.Summary.FilledOrderCount, filled)

	positions := readCSV(t, posPath)
	require.Len(t, positions, 1+len(res.Positions))
	for i, row := range positions[1:] {
		assert.Equal(t, "run-csv", row[0])
		assert.Equal(t, strconv.Itoa(i), row[1])

		price, err := strconv.ParseFloat(row[4], 64)
		require.NoError(t, err)
		assert.InDelta(t, res.Positions[i].Price, price, 1e-6)
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
