// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/polycheck/internal/market"
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List active markets and their person contenders",
	Long: `Markets fetches active Polymarket markets and shows which of their top
outcomes look like person names. Markets with no person contenders are
omitted. Use --slug to inspect a single market by its URL slug.`,
	RunE: runMarkets,
}

func init() {
	marketsCmd.Flags().Int("markets", 0, "maximum markets to fetch (0 = config default)")
	marketsCmd.Flags().Int("top", 0, "top outcomes considered per market (0 = config default)")
	marketsCmd.Flags().String("slug", "", "inspect a single market by slug")
	marketsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(marketsCmd)
}

func runMarkets(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()
	if n, _ := cmd.Flags().GetInt("markets"); n > 0 {
		cfg.Market.Limit = n
	}
	if n, _ := cmd.Flags().GetInt("top"); n > 0 {
		cfg.Market.TopContenders = n
	}

	client := market.NewGammaClient(cfg.Market)
	ctx := context.Background()

	var apiMarkets []market.APIMarket
	if slug, _ := cmd.Flags().GetString("slug"); slug != "" {
		m, err := client.MarketBySlug(ctx, slug)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("no market found for slug %q", slug)
		}
		apiMarkets = []market.APIMarket{*m}
	} else {
		var err error
		apiMarkets, err = client.ActiveMarkets(ctx, cfg.Market.Limit)
		if err != nil {
			return err
		}
	}

	markets := market.WithPeople(apiMarkets, cfg.Market.TopContenders)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(markets)
	}

	if len(markets) == 0 {
		fmt.Println("No markets with person contenders found.")
		return nil
	}

	for _, m := range markets {
		fmt.Printf("%s\n", m.Title)
		for _, c := range m.Contenders {
			fmt.Printf("  %-30s %5.1f%%\n", c.Name, c.Probability)
		}
		fmt.Println()
	}
	fmt.Printf("%d markets with person contenders (of %d fetched)\n",
		len(markets), len(apiMarkets))
	return nil
}
