package backtest

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rustyeddy/backtester/pricing"
)

const (
	ReasonSellSignal = "SellSignal"
	ReasonEndOfData  = "EndOfData"
)

var (
	// ErrSignalMismatch means the signal stream is not aligned 1:1 with the
	// candle series.
	ErrSignalMismatch = errors.New("signal count does not match candle count")

	// ErrUnorderedCandles means the candle series is not strictly increasing
	// in time.
	ErrUnorderedCandles = errors.New("candles not strictly increasing in time")
)

// Engine walks a candle series with its aligned signal stream and simulates a
// single-position account: at most one trade is open at any point.
//
// Fills are at bar close. A Buy opens a position when flat, a Sell closes the
// open position, everything else is a no-op (no pyramiding, no re-entry while
// open). Whatever is still open after the last bar is force-closed at that
// bar's close, so every trade the engine creates appears in Trades.
type Engine struct {
	StrategyName string
	PositionSize float64

	open   *Trade
	Trades []Trade
}

func NewEngine(strategyName string, positionSize float64) *Engine {
	if positionSize <= 0 {
		positionSize = 1.0
	}
	return &Engine{
		StrategyName: strategyName,
		PositionSize: positionSize,
	}
}

// Run executes the simulation and returns the closed trades in exit order.
//
// Preconditions are checked up front and fail the whole run before any trade
// is produced; an empty series or an all-Hold stream is not an error and
// yields an empty trade list.
func (e *Engine) Run(candles []pricing.Candle, signals []Signal) ([]Trade, error) {
	if len(signals) != len(candles) {
		return nil, fmt.Errorf("%w: %d signals for %d candles",
			ErrSignalMismatch, len(signals), len(candles))
	}
	if err := pricing.ValidateSeries(candles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnorderedCandles, err)
	}

	// Fresh allocation per run: the returned slice belongs to the caller,
	// and a later run must not write over it.
	e.open = nil
	e.Trades = nil

	for i, c := range candles {
		switch signals[i] {
		case Buy:
			if e.open == nil {
				e.open = newTrade(e.StrategyName, c.Time, c.Close)
				slog.Debug("opened trade",
					"strategy", e.StrategyName,
					"trade_id", e.open.ID,
					"entry_time", c.Time,
					"entry_price", c.Close)
			}
		case Sell:
			if e.open != nil {
				e.closeOpen(c, ReasonSellSignal)
			}
		}
	}

	// End of data acts as an implicit Sell.
	if e.open != nil {
		last := candles[len(candles)-1]
		e.closeOpen(last, ReasonEndOfData)
	}

	return e.Trades, nil
}

func (e *Engine) closeOpen(c pricing.Candle, reason string) {
	t := e.open
	t.close(c.Time, c.Close, e.PositionSize, reason)
	e.Trades = append(e.Trades, *t)
	e.open = nil

	slog.Debug("closed trade",
		"strategy", e.StrategyName,
		"trade_id", t.ID,
		"exit_time", t.ExitTime,
		"exit_price", t.ExitPrice,
		"pnl", t.PnL,
		"status", t.Status,
		"reason", reason)
}
