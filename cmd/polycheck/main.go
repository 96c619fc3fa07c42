// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the polycheck CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/polycheck/internal/secrets"
	"github.com/pdiddy/polycheck/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "polycheck/0.1"
)

// rootCmd is the base command for the polycheck CLI.
var rootCmd = &cobra.Command{
	Use:   "polycheck",
	Short: "Birth dates for prediction-market contenders",
	Long: `polycheck crawls Polymarket for active markets whose outcomes name
people, resolves each person against Wikipedia, and records their birth
dates in a local results store.

Each pipeline stage is a subcommand: markets lists discovered markets and
their contenders, lookup resolves a single name, crawl runs the whole
pipeline, and report renders or exports the stored results.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; values already in the environment win.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./polycheck.yaml or ~/.config/polycheck/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("polycheck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "polycheck"))
		}
	}

	viper.SetEnvPrefix("POLYCHECK")
	viper.AutomaticEnv()

	viper.SetDefault("market.base_url", "")
	viper.SetDefault("market.limit", 100)
	viper.SetDefault("market.top_contenders", 4)
	viper.SetDefault("lookup.api_url", "")
	viper.SetDefault("lookup.search_limit", 5)
	viper.SetDefault("lookup.delay", "0s")
	viper.SetDefault("report.data_dir", "data")
	viper.SetDefault("report.csv_path", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configuration from viper, filling
// HTTP defaults and the contact email from secrets.
func pipelineConfig() types.PipelineConfig {
	userAgent := defaultUserAgent
	if email, ok := loadedSecrets["contact-email"]; ok {
		userAgent = fmt.Sprintf("%s (%s)", defaultUserAgent, email)
	}

	http := types.HTTPConfig{
		Timeout:   defaultTimeout,
		UserAgent: userAgent,
	}

	return types.PipelineConfig{
		Market: types.MarketConfig{
			HTTPConfig:    http,
			BaseURL:       viper.GetString("market.base_url"),
			Limit:         viper.GetInt("market.limit"),
			TopContenders: viper.GetInt("market.top_contenders"),
		},
		Lookup: types.LookupConfig{
			HTTPConfig:  http,
			APIURL:      viper.GetString("lookup.api_url"),
			SearchLimit: viper.GetInt("lookup.search_limit"),
			LookupDelay: viper.GetDuration("lookup.delay"),
		},
		Report: types.ReportConfig{
			DataDir: viper.GetString("report.data_dir"),
			CSVPath: viper.GetString("report.csv_path"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
