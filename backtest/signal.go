// Package backtest implements the signal-to-trade simulation engine: a
// deterministic fold over a time-ordered candle series and an aligned signal
// stream that opens and closes a single position and reduces the resulting
// trades to summary metrics.
package backtest

// Signal is the per-bar directive a strategy emits.
// The numeric values match the conventional +1/0/-1 encoding.
type Signal int8

const (
	Sell Signal = -1
	Hold Signal = 0
	Buy  Signal = +1
)

func (s Signal) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "HOLD"
	}
}
