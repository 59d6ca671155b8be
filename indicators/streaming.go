package indicators

import (
	"fmt"

	"github.com/rustyeddy/backtester/pricing"
)

// ExponentialMA is a streaming Exponential Moving Average over candle closes.
//
// It is value-identical to the batch EMA function: the first close seeds the
// average and each later close applies the recursive smoothing. Feeding the
// same candles one at a time yields the same final value as EMA(closes, p).
type ExponentialMA struct {
	period     int
	multiplier float64
	ema        float64
	count      int
}

// NewEMA creates a streaming Exponential Moving Average with the given period.
func NewEMA(period int) *ExponentialMA {
	return &ExponentialMA{
		period:     period,
		multiplier: 2.0 / float64(period+1),
	}
}

func (e *ExponentialMA) Name() string {
	return fmt.Sprintf("EMA(%d)", e.period)
}

func (e *ExponentialMA) Warmup() int {
	// Seeded from the first sample, so a single update makes it ready.
	return 1
}

func (e *ExponentialMA) Reset() {
	e.ema = 0
	e.count = 0
}

func (e *ExponentialMA) Update(c pricing.Candle) {
	if e.count == 0 {
		e.ema = c.Close
	} else {
		e.ema = (c.Close-e.ema)*e.multiplier + e.ema
	}
	e.count++
}

func (e *ExponentialMA) Ready() bool {
	return e.count >= e.Warmup()
}

func (e *ExponentialMA) Value() float64 {
	if !e.Ready() {
		return 0
	}
	return e.ema
}
