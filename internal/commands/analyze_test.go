package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JerBouma/PersonalFinance/internal/config"
	"github.com/JerBouma/PersonalFinance/internal/example"
	"github.com/JerBouma/PersonalFinance/internal/runlog"
)

func materializeExample(t *testing.T) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()
	configPath, err := example.Materialize(dir)
	require.NoError(t, err)
	return dir, configPath
}

func TestRunAnalyze_EndToEnd(t *testing.T) {
	dir, configPath := materializeExample(t)

	require.NoError(t, runAnalyze(configPath, false, false))

	reports := filepath.Join(dir, "reports")
	for _, name := range []string{
		"daily_transactions.csv",
		"weekly_overview.csv",
		"monthly_overview.csv",
		"quarterly_overview.csv",
		"yearly_overview.csv",
	} {
		_, err := os.Stat(filepath.Join(reports, name))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(reports, "monthly_overview.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	// July through December, plus the header.
	require.Len(t, lines, 7)
	assert.Equal(t, "period (EUR),Totals,Groceries,Subscriptions,Transport,Salary,Transfers,Other", lines[0])
	assert.Equal(t, "2023-07", strings.SplitN(lines[1], ",", 2)[0])
}

func TestRunAnalyze_DeduplicatesOverlappingFiles(t *testing.T) {
	// The two example exports both contain the late September salary and
	// savings rows; only the first file's copies survive.
	dir, configPath := materializeExample(t)

	require.NoError(t, runAnalyze(configPath, false, true))

	entries, err := runlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Files)
	assert.Equal(t, 29, entries[0].Rows)
	assert.Equal(t, 2, entries[0].DuplicatesDropped)
	assert.Equal(t, 0, entries[0].RowsSkipped)
	assert.InDelta(t, 100.0, entries[0].CategorizedPct, 0.001)
}

func TestRunAnalyze_Idempotent(t *testing.T) {
	dir, configPath := materializeExample(t)

	require.NoError(t, runAnalyze(configPath, false, false))
	first, err := os.ReadFile(filepath.Join(dir, "reports", "monthly_overview.csv"))
	require.NoError(t, err)

	require.NoError(t, runAnalyze(configPath, false, false))
	second, err := os.ReadFile(filepath.Join(dir, "reports", "monthly_overview.csv"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRunAnalyze_SkipReport(t *testing.T) {
	dir, configPath := materializeExample(t)

	require.NoError(t, runAnalyze(configPath, false, true))

	_, err := os.Stat(filepath.Join(dir, "reports"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunAnalyze_RejectsPlaceholderLocation(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, configFileName)
	require.NoError(t, config.Save(configPath, config.Default()))

	err := runAnalyze(configPath, false, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "general.file_location")
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "analyze")
}
