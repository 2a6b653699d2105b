// Package example ships a small self-contained dataset so the tool can be
// tried without real bank exports. The two CSV files deliberately overlap
// in late September, which demonstrates inter-file deduplication.
package example

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JerBouma/PersonalFinance/internal/config"
)

//go:embed transactions_q3.csv transactions_q4.csv
var datasets embed.FS

// Materialize writes the example datasets and a matching configuration
// into dir and returns the configuration path.
func Materialize(dir string) (string, error) {
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("creating example data dir: %w", err)
	}

	names, err := datasets.ReadDir(".")
	if err != nil {
		return "", fmt.Errorf("listing example datasets: %w", err)
	}
	for _, entry := range names {
		data, err := datasets.ReadFile(entry.Name())
		if err != nil {
			return "", fmt.Errorf("reading embedded %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dataDir, entry.Name()), data, 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", entry.Name(), err)
		}
	}

	cfg := config.Default()
	cfg.General.FileLocation = config.StringList{dataDir}
	cfg.Report.Directory = filepath.Join(dir, "reports")

	configPath := filepath.Join(dir, "cashflow.yaml")
	if err := config.Save(configPath, cfg); err != nil {
		return "", err
	}
	return configPath, nil
}
