package strategies

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/pricing"
)

// Strategy maps a candle series to one signal per candle. Implementations
// must be pure: no lookahead, and the same candles always produce the same
// signals.
type Strategy interface {
	Name() string
	Signals(candles []pricing.Candle) ([]backtest.Signal, error)
}

var registry = make(map[string]Strategy)

func Register(name string, strat Strategy) {
	registry[name] = strat
}

func Get(name string) Strategy {
	return registry[name]
}

// ByName builds a strategy with default parameters. Use the typed
// constructors when the caller carries its own configuration.
func ByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "noop", "none":
		return NoopStrategy{}, nil

	case "macd", "macd-cross":
		return NewMACD(MACDConfigDefaults()), nil

	case "rsi-ema", "rsiema":
		return NewRSIEMA(RSIEMAConfigDefaults()), nil

	default:
		return nil, fmt.Errorf("unknown strategy %q (supported: noop, macd, rsi-ema)", name)
	}
}
