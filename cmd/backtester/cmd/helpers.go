package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/journal"
	"github.com/rustyeddy/backtester/pricing"
	"github.com/rustyeddy/backtester/strategies"
)

// openJournal maps journal flags to a concrete journal; "none" yields nil.
func openJournal(typ, tradesFile, runsFile, dbPath string) (journal.Journal, error) {
	switch typ {
	case "csv":
		return journal.NewCSV(tradesFile, runsFile)
	case "sqlite":
		return journal.NewSQLite(dbPath)
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q (csv, sqlite, none)", typ)
	}
}

// runAll executes each strategy as an independent runner over the same
// candles and prints a report per run.
func runAll(candles []pricing.Candle, strats []strategies.Strategy, size float64, j journal.Journal) error {
	for _, strat := range strats {
		runner := &backtest.Runner{
			Candles:      candles,
			Strategy:     strat,
			PositionSize: size,
			Journal:      j,
		}

		res, err := runner.Run()
		if err != nil {
			return fmt.Errorf("%s: %w", strat.Name(), err)
		}

		backtest.PrintResult(os.Stdout, res)
	}
	return nil
}
