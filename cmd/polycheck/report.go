// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/polycheck/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show, export, or clear stored results",
	Long: `Report works with the local results store written by crawl. Use
subcommands to render the stored rows as a table, export them to CSV,
YAML, or JSON, or clear the store.`,
}

// --- show subcommand ---

var reportShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Render stored results as a table",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		rows, err := store.Rows(context.Background())
		if err != nil {
			return err
		}
		report.FormatTable(rows, os.Stdout)
		return nil
	},
}

// --- export subcommand ---

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored results to CSV, YAML, or JSON",
	RunE:  runReportExport,
}

func runReportExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	var path string
	switch format {
	case "csv", "":
		path, err = store.ExportCSV(ctx)
	case "yaml":
		path, err = store.ExportYAML(ctx)
	case "json":
		path, err = store.ExportJSON(ctx)
	default:
		return fmt.Errorf("unsupported format %q: use csv, yaml, or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}

// --- clear subcommand ---

var reportClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored results, keeping the store itself",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("Results cleared.")
		return nil
	},
}

func openStore() (*report.Store, error) {
	cfg := pipelineConfig()
	return report.NewStore(cfg.Report)
}

func init() {
	reportExportCmd.Flags().String("format", "csv", "export format: csv, yaml, or json")

	reportCmd.AddCommand(reportShowCmd)
	reportCmd.AddCommand(reportExportCmd)
	reportCmd.AddCommand(reportClearCmd)

	rootCmd.AddCommand(reportCmd)
}
