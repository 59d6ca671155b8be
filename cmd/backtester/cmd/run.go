package cmd

import (
	"context"
	"fmt"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/binance"
	"github.com/rustyeddy/backtester/config"
	"github.com/rustyeddy/backtester/pricing"
	"github.com/rustyeddy/backtester/strategies"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch candles and backtest in one step",
	Long: `Run drives the whole pipeline from a config file: load candles
(Binance download or local CSV), run every configured strategy, print the
reports, and journal trades plus run summaries.

Example:
  backtester run --config backtest.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to YAML or JSON config (required)")
	runCmd.MarkFlagRequired("config")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(runConfigPath)
	if err != nil {
		return err
	}

	candles, err := loadCandles(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d candles for %s\n\n", len(candles), cfg.Data.Symbol)

	var strats []strategies.Strategy
	for _, sc := range cfg.Strategies {
		strat, err := sc.Build()
		if err != nil {
			return err
		}
		strats = append(strats, strat)
	}

	j, err := openJournal(cfg.Journal.Type, cfg.Journal.TradesFile, cfg.Journal.RunsFile, cfg.Journal.DBPath)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
	}

	return runAll(candles, strats, cfg.Backtest.PositionSize, j)
}

func loadCandles(cfg *config.Config) ([]pricing.Candle, error) {
	switch cfg.Data.Source {
	case "binance":
		client := binance.NewClient()
		defer client.Close()
		return client.FetchKlines(context.Background(), cfg.Data.Symbol, cfg.Data.Interval, cfg.Data.Limit)

	case "csv":
		return backtest.ReadCandlesCSV(cfg.Data.CSVPath, cfg.Data.Symbol)

	default:
		return nil, fmt.Errorf("unsupported data source %q", cfg.Data.Source)
	}
}
