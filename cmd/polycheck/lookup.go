// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/polycheck/internal/wiki"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [name]",
	Short: "Resolve one person's birth date from Wikipedia",
	Long: `Lookup searches Wikipedia for a single person name, picks the best
matching page, and extracts the birth date from its wikitext.`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a person name, e.g. polycheck lookup \"Jane Smith\"")
	}
	name := strings.Join(args, " ")

	cfg := pipelineConfig()
	client := wiki.NewClient(cfg.Lookup)

	result := wiki.LookupPerson(context.Background(), client, name)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%-12s %s\n", "Name:", result.Name)
	fmt.Printf("%-12s %s\n", "Status:", result.Status())
	if result.WikipediaURL != "" {
		fmt.Printf("%-12s %s\n", "Page:", result.WikipediaURL)
	}
	if result.BirthDate != "" {
		fmt.Printf("%-12s %s\n", "Birth date:", result.BirthDate)
		fmt.Printf("%-12s %s\n", "Raw:", result.BirthDateRaw)
	}
	if result.Error != "" {
		fmt.Printf("%-12s %s\n", "Detail:", result.Error)
	}
	return nil
}
