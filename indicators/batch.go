package indicators

import (
	"fmt"
	"math"
)

// EMA calculates the Exponential Moving Average over the full series.
//
// The first output is seeded with the first sample and every later output
// applies the standard recursive smoothing with alpha = 2/(period+1). The
// result has the same length as the input, so it stays index-aligned with
// the candle series it was derived from.
func EMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("period must be positive, got %d", period)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("empty input series")
	}

	multiplier := 2.0 / float64(period+1)

	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = (values[i]-out[i-1])*multiplier + out[i-1]
	}
	return out, nil
}

// MACD calculates the Moving Average Convergence Divergence indicator.
//
// The MACD line is EMA(fast) - EMA(slow); the signal line is an EMA of the
// MACD line itself. Both outputs are index-aligned with the input.
func MACD(values []float64, fastPeriod, slowPeriod, signalPeriod int) (macd, signal []float64, err error) {
	fast, err := EMA(values, fastPeriod)
	if err != nil {
		return nil, nil, fmt.Errorf("fast ema: %w", err)
	}
	slow, err := EMA(values, slowPeriod)
	if err != nil {
		return nil, nil, fmt.Errorf("slow ema: %w", err)
	}

	macd = make([]float64, len(values))
	for i := range values {
		macd[i] = fast[i] - slow[i]
	}

	signal, err = EMA(macd, signalPeriod)
	if err != nil {
		return nil, nil, fmt.Errorf("signal ema: %w", err)
	}
	return macd, signal, nil
}

// RSI calculates the Relative Strength Index over the full series.
//
// Gains and losses are averaged with a simple rolling mean of `period`
// samples. The first sample has no previous close, so its gain and loss
// both count as zero; the first defined output is therefore at index
// period-1, and the first period-1 outputs are NaN. Comparisons against
// NaN are false, which is exactly how strategies are expected to treat
// the warmup region (no signal).
//
// When the average loss is zero the RSI saturates at 100; when both
// averages are zero (a flat window) the value is NaN.
func RSI(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("period must be positive, got %d", period)
	}

	out := make([]float64, len(values))
	for i := range out {
		out[i] = math.NaN()
	}
	if len(values) < period {
		return out, nil
	}

	gains := make([]float64, len(values))
	losses := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		delta := values[i] - values[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 0; i < period; i++ {
		gainSum += gains[i]
		lossSum += losses[i]
	}

	for i := period - 1; i < len(values); i++ {
		if i >= period {
			gainSum += gains[i] - gains[i-period]
			lossSum += losses[i] - losses[i-period]
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)

		// IEEE division carries the edge cases: avgLoss==0 yields +Inf
		// (RSI 100), 0/0 yields NaN.
		rs := avgGain / avgLoss
		out[i] = 100 - 100/(1+rs)
	}
	return out, nil
}
