package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JerBouma/PersonalFinance/internal/categorize"
	"github.com/JerBouma/PersonalFinance/internal/config"
	"github.com/JerBouma/PersonalFinance/internal/dataset"
	"github.com/JerBouma/PersonalFinance/internal/dedup"
	"github.com/JerBouma/PersonalFinance/internal/example"
	"github.com/JerBouma/PersonalFinance/internal/model"
	"github.com/JerBouma/PersonalFinance/internal/normalize"
	"github.com/JerBouma/PersonalFinance/internal/overview"
	"github.com/JerBouma/PersonalFinance/internal/report"
	"github.com/JerBouma/PersonalFinance/internal/runlog"
)

func newAnalyzeCommand() *cobra.Command {
	var configPath string
	var useExample bool
	var skipReport bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the full pipeline: load, categorize, deduplicate, aggregate, report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(configPath, useExample, skipReport)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", configFileName, "path to the configuration file")
	cmd.Flags().BoolVar(&useExample, "example", false, "run against the bundled example dataset")
	cmd.Flags().BoolVar(&skipReport, "skip-report", false, "run the pipeline without writing report files")

	return cmd
}

func runAnalyze(configPath string, useExample, skipReport bool) error {
	start := time.Now()
	runID := uuid.NewString()
	logger := log.With("run", runID[:8])

	if useExample {
		dir, err := os.MkdirTemp("", "personalfinance-example-")
		if err != nil {
			return fmt.Errorf("creating example dir: %w", err)
		}
		configPath, err = example.Materialize(dir)
		if err != nil {
			return fmt.Errorf("materializing example data: %w", err)
		}
		logger.Info("running against the bundled example dataset", "dir", dir)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	for _, loc := range cfg.General.FileLocation {
		if loc == config.PlaceholderLocation {
			return fmt.Errorf("general.file_location is still %s; point it at your bank exports or pass --example", config.PlaceholderLocation)
		}
	}

	files, err := dataset.Resolve(cfg.General.FileLocation)
	if err != nil {
		return err
	}

	var txns []model.Transaction
	skipped := 0
	for _, path := range files {
		ds, err := dataset.Load(path)
		if err != nil {
			return err
		}

		fields, err := normalize.ResolveColumns(ds.Columns, cfg.General)
		if err != nil {
			return fmt.Errorf("%s: %w", ds.File, err)
		}
		if len(fields.Description) == 0 {
			logger.Warn("no description columns found, rows from this file will land in Other", "file", ds.File)
		}

		res := normalize.Rows(ds, fields, cfg.General)
		logger.Info("loaded dataset", "file", ds.File, "rows", len(res.Transactions), "skipped", res.Skipped)
		txns = append(txns, res.Transactions...)
		skipped += res.Skipped
	}

	logger.Info("categorizing transactions", "rows", len(txns), "threshold", cfg.General.CategorizationThreshold)
	matcher := categorize.NewMatcher(cfg.Categories, cfg.General.CategorizationThreshold)
	matcher.Apply(txns)

	txns, dedupStats := dedup.Collapse(txns, cfg.General.AdjustDuplicates)
	if dedupStats.Dropped > 0 {
		logger.Info("removed duplicates from overlapping export windows", "dropped", dedupStats.Dropped)
	}

	printSummary(txns, matcher, cfg.General.CategorizationThreshold)

	if !skipReport {
		if err := emitReports(cfg, txns); err != nil {
			return err
		}
		fmt.Printf("Reports written to %s\n", cfg.Report.Directory)
	}

	entry := runlog.Entry{
		RunID:             runID,
		Timestamp:         start,
		ConfigPath:        configPath,
		Files:             len(files),
		Rows:              len(txns),
		RowsSkipped:       skipped,
		DuplicatesDropped: dedupStats.Dropped,
		CategorizedPct:    categorizedPct(txns),
		Elapsed:           time.Since(start),
	}
	if err := runlog.Append(filepath.Dir(configPath), entry); err != nil {
		logger.Warn("could not write run log", "err", err)
	}

	return nil
}

func emitReports(cfg *config.Config, txns []model.Transaction) error {
	emitter := report.NewCSVEmitter(cfg.Report.Directory, cfg.Report.Currency)

	for _, name := range cfg.Report.Overviews {
		g, err := overview.ParseGranularity(name)
		if err != nil {
			return err
		}

		// The daily sheet is the audit-level transactions overview; the
		// coarser periods get aggregated category tables.
		if g == overview.Daily {
			if err := emitter.EmitTransactions(g, overview.Transactions(txns, g)); err != nil {
				return err
			}
			continue
		}

		table := overview.Build(txns, g, cfg.Categories, cfg.General.CategoryExclusions)
		if err := emitter.EmitOverview(table); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(txns []model.Transaction, matcher *categorize.Matcher, threshold int) {
	bold := color.New(color.Bold)
	bold.Printf("%.2f%% of %d transactions categorized\n", categorizedPct(txns), len(txns))

	misses := matcher.Misses()
	if len(misses) == 0 {
		return
	}

	fmt.Printf("The following keywords never reached the threshold of %d; consider removing or updating them:\n", threshold)
	for _, miss := range misses {
		fmt.Printf("  %s (best score %d)\n", miss.Keyword, miss.Score)
	}
}

func categorizedPct(txns []model.Transaction) float64 {
	if len(txns) == 0 {
		return 0
	}
	categorized := 0
	for _, t := range txns {
		if t.Category != model.CategoryOther {
			categorized++
		}
	}
	return float64(categorized) / float64(len(txns)) * 100
}
