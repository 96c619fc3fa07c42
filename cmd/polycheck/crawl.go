// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/polycheck/internal/crawl"
	"github.com/pdiddy/polycheck/internal/market"
	"github.com/pdiddy/polycheck/internal/report"
	"github.com/pdiddy/polycheck/internal/wiki"
	"github.com/pdiddy/polycheck/pkg/types"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl markets and resolve contender birth dates",
	Long: `Crawl fetches active Polymarket markets, selects the top outcomes that
look like person names, resolves each person's birth date from Wikipedia,
and writes the results to the local store, a CSV file, or both.`,
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().Int("markets", 0, "maximum markets to fetch (0 = config default)")
	crawlCmd.Flags().Int("top", 0, "top outcomes considered per market (0 = config default)")
	crawlCmd.Flags().Duration("delay", 0, "delay between Wikipedia lookups")
	crawlCmd.Flags().String("output", "store", "where results go: store, csv, or both")
	crawlCmd.Flags().String("csv-path", "", "CSV output path (default: <data-dir>/results.csv)")
	crawlCmd.Flags().Bool("clear", true, "replace stored results (--clear=false appends)")
	crawlCmd.Flags().Bool("quiet", false, "suppress progress output")

	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	if n, _ := cmd.Flags().GetInt("markets"); n > 0 {
		cfg.Market.Limit = n
	}
	if n, _ := cmd.Flags().GetInt("top"); n > 0 {
		cfg.Market.TopContenders = n
	}
	if d, _ := cmd.Flags().GetDuration("delay"); d > 0 {
		cfg.Lookup.LookupDelay = d
	}
	output, _ := cmd.Flags().GetString("output")
	if output != "store" && output != "csv" && output != "both" {
		return fmt.Errorf("unsupported output %q: use store, csv, or both", output)
	}

	var progress io.Writer = os.Stdout
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		progress = io.Discard
	}

	crawler := &crawl.Crawler{
		Markets: market.NewGammaClient(cfg.Market),
		Wiki:    wiki.NewClient(cfg.Lookup),
		TopN:    cfg.Market.TopContenders,
		Delay:   cfg.Lookup.LookupDelay,
	}

	ctx := context.Background()
	rows, summary, err := crawler.Run(ctx, cfg.Market.Limit, progress)
	if err != nil {
		return err
	}

	now := time.Now()

	if output == "store" || output == "both" {
		store, err := report.NewStore(cfg.Report)
		if err != nil {
			return err
		}
		defer store.Close()

		clearExisting, _ := cmd.Flags().GetBool("clear")
		if clearExisting {
			err = store.Replace(ctx, rows, now)
		} else {
			err = store.Append(ctx, rows, now)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(progress, "stored %d rows\n", len(rows))
	}

	if output == "csv" || output == "both" {
		path, err := writeCSV(cmd, cfg.Report.CSVPath, cfg.Report.DataDir, rows, now)
		if err != nil {
			return err
		}
		fmt.Fprintf(progress, "wrote %s\n", path)
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d lookup(s) failed with network errors", summary.Errors)
	}
	return nil
}

// writeCSV picks the CSV path (flag, then config, then data dir default)
// and writes the run's rows stamped with now.
func writeCSV(cmd *cobra.Command, cfgPath, dataDir string, rows []types.Row, now time.Time) (string, error) {
	path, _ := cmd.Flags().GetString("csv-path")
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		path = filepath.Join(dataDir, "results.csv")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	stamp := now.UTC().Format(report.TimestampLayout)
	stored := make([]report.StoredRow, len(rows))
	for i, r := range rows {
		stored[i] = report.StoredRow{Row: r, LastUpdated: stamp}
	}
	return path, report.WriteCSVFile(path, stored)
}
