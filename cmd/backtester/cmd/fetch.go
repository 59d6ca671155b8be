package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/binance"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download historical klines from Binance to a candle CSV",
	Long: `Fetch downloads OHLCV klines from the Binance public API and writes
them in the canonical candle CSV format (time,open,high,low,close,volume).

Example:
  backtester fetch --symbol BTCUSDT --interval 1m --limit 1000 --out btcusdt.csv`,
	RunE: runFetch,
}

var (
	fetchSymbol   string
	fetchInterval string
	fetchLimit    int
	fetchOut      string
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchSymbol, "symbol", "s", "BTCUSDT", "trading pair symbol")
	fetchCmd.Flags().StringVarP(&fetchInterval, "interval", "i", "1m", "candle interval (1m, 5m, 1h, ...)")
	fetchCmd.Flags().IntVarP(&fetchLimit, "limit", "l", 1000, "number of candles to fetch (max 1000)")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "output CSV path (required)")

	fetchCmd.MarkFlagRequired("out")
}

func runFetch(cmd *cobra.Command, args []string) error {
	client := binance.NewClient()
	defer client.Close()

	candles, err := client.FetchKlines(context.Background(), fetchSymbol, fetchInterval, fetchLimit)
	if err != nil {
		return fmt.Errorf("fetch klines: %w", err)
	}

	f, err := os.Create(fetchOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := backtest.WriteCandlesCSV(f, candles); err != nil {
		return fmt.Errorf("write candles: %w", err)
	}

	fmt.Printf("Fetched %d candles for %s (%s) -> %s\n",
		len(candles), fetchSymbol, fetchInterval, fetchOut)
	return nil
}
