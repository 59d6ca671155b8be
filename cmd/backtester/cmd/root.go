package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "backtester",
	Short: "A rule-based trading strategy backtester",
	Long: `Backtester simulates simple rule-based trading strategies against
historical price candles.

It provides tools for:
  - Downloading historical klines from Binance
  - Generating BUY/SELL/HOLD signals from technical indicators (EMA, MACD, RSI)
  - Simulating a single-position trading account over a candle series
  - Journaling trades and run summaries to CSV or SQLite
  - Reporting win rate, total and average PnL per strategy`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
