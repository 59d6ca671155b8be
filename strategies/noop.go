package strategies

import (
	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/pricing"
)

// NoopStrategy holds on every bar. Useful as a baseline: a run with it must
// produce zero trades and all-zero metrics.
type NoopStrategy struct{}

func (NoopStrategy) Name() string { return "Noop" }

func (NoopStrategy) Signals(candles []pricing.Candle) ([]backtest.Signal, error) {
	return make([]backtest.Signal, len(candles)), nil
}
