package strategies

import (
	"encoding/json"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/indicators"
	"github.com/rustyeddy/backtester/pricing"
)

// RSIEMA combines an RSI oscillator with an EMA trend filter:
// Buy where RSI is above the oversold level AND price is above the EMA,
// Sell where RSI is above the overbought level OR price is below the EMA.
//
// The sell condition is evaluated after the buy assignment, so a bar that
// satisfies both resolves to Sell. That overwrite order is load-bearing:
// changing it changes the output on overlapping bars.
type RSIEMA struct {
	*RSIEMAConfig
}

type RSIEMAConfig struct {
	RSIPeriod  int     `json:"rsi-period" yaml:"rsi-period"` // 14
	EMAPeriod  int     `json:"ema-period" yaml:"ema-period"` // 21
	Oversold   float64 `json:"oversold" yaml:"oversold"`     // 30
	Overbought float64 `json:"overbought" yaml:"overbought"` // 70
}

func (c *RSIEMAConfig) JSON() ([]byte, error) {
	return json.Marshal(c)
}

func RSIEMAConfigDefaults() *RSIEMAConfig {
	return &RSIEMAConfig{
		RSIPeriod:  14,
		EMAPeriod:  21,
		Oversold:   30,
		Overbought: 70,
	}
}

func NewRSIEMA(cfg *RSIEMAConfig) *RSIEMA {
	if cfg.RSIPeriod == 0 {
		cfg.RSIPeriod = 14
	}
	if cfg.EMAPeriod == 0 {
		cfg.EMAPeriod = 21
	}
	if cfg.Oversold == 0 {
		cfg.Oversold = 30
	}
	if cfg.Overbought == 0 {
		cfg.Overbought = 70
	}
	return &RSIEMA{RSIEMAConfig: cfg}
}

func (s *RSIEMA) Name() string { return "RSI-EMA" }

func (s *RSIEMA) Signals(candles []pricing.Candle) ([]backtest.Signal, error) {
	if len(candles) == 0 {
		return nil, nil
	}

	closes := pricing.Closes(candles)

	rsi, err := indicators.RSI(closes, s.RSIPeriod)
	if err != nil {
		return nil, err
	}

	// The trend filter consumes candles incrementally; the streaming EMA
	// yields the same values as the batch function.
	emaInd := indicators.NewEMA(s.EMAPeriod)
	ema := make([]float64, len(candles))
	for i, c := range candles {
		emaInd.Update(c)
		ema[i] = emaInd.Value()
	}

	signals := make([]backtest.Signal, len(candles))

	// RSI is NaN during warmup; comparisons against NaN are false, so those
	// bars stay Hold unless the sell condition's EMA leg fires.
	for i := range candles {
		if rsi[i] > s.Oversold && closes[i] > ema[i] {
			signals[i] = backtest.Buy
		}
	}
	for i := range candles {
		if rsi[i] > s.Overbought || closes[i] < ema[i] {
			signals[i] = backtest.Sell
		}
	}
	return signals, nil
}
