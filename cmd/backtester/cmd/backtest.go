package cmd

import (
	"fmt"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/strategies"
	"github.com/spf13/cobra"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Run strategies against a candle CSV",
	Long: `Backtest replays a candle CSV through one or more strategies and
prints a trade log plus summary metrics for each.

Supported strategies:
  - macd:    MACD line vs an EMA of itself (crossover)
  - rsi-ema: RSI oscillator with an EMA trend filter
  - noop:    does nothing (baseline test)

Example:
  backtester backtest --candles btcusdt.csv --strategy macd --strategy rsi-ema`,
	RunE: runBacktestCmd,
}

var (
	btCandlesPath string
	btSymbol      string
	btStrategies  []string
	btSize        float64

	btJournalType string
	btTradesFile  string
	btRunsFile    string
	btDBPath      string
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btCandlesPath, "candles", "c", "", "path to candle CSV (time,open,high,low,close,volume) (required)")
	backtestCmd.Flags().StringVar(&btSymbol, "symbol", "", "symbol label attached to candles")
	backtestCmd.Flags().StringArrayVarP(&btStrategies, "strategy", "s", []string{"macd", "rsi-ema"}, "strategy name, repeatable (macd, rsi-ema, noop)")
	backtestCmd.Flags().Float64Var(&btSize, "size", 1.0, "position size multiplier applied to every trade's PnL")

	backtestCmd.Flags().StringVar(&btJournalType, "journal", "none", "journal type (csv, sqlite, none)")
	backtestCmd.Flags().StringVar(&btTradesFile, "trades-file", "./trades.csv", "CSV journal: trades output path")
	backtestCmd.Flags().StringVar(&btRunsFile, "runs-file", "./runs.csv", "CSV journal: run summaries output path")
	backtestCmd.Flags().StringVarP(&btDBPath, "db", "d", "./backtest.sqlite", "SQLite journal: database path")

	backtestCmd.MarkFlagRequired("candles")
}

func runBacktestCmd(cmd *cobra.Command, args []string) error {
	candles, err := backtest.ReadCandlesCSV(btCandlesPath, btSymbol)
	if err != nil {
		return fmt.Errorf("read candles: %w", err)
	}

	var strats []strategies.Strategy
	for _, name := range btStrategies {
		strat, err := strategies.ByName(name)
		if err != nil {
			return err
		}
		strats = append(strats, strat)
	}

	j, err := openJournal(btJournalType, btTradesFile, btRunsFile, btDBPath)
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
	}

	fmt.Printf("Loaded %d candles from %s\n\n", len(candles), btCandlesPath)

	return runAll(candles, strats, btSize, j)
}
