package strategies

import (
	"encoding/json"

	"github.com/rustyeddy/backtester/backtest"
	"github.com/rustyeddy/backtester/indicators"
	"github.com/rustyeddy/backtester/pricing"
)

// MACD trades the MACD line against an EMA of itself:
// Buy while the MACD line is above its EMA, Sell while below, Hold on a tie.
type MACD struct {
	*MACDConfig
}

type MACDConfig struct {
	FastPeriod   int `json:"fast-period" yaml:"fast-period"`     // 12
	SlowPeriod   int `json:"slow-period" yaml:"slow-period"`     // 26
	SignalPeriod int `json:"signal-period" yaml:"signal-period"` // 9
	EMAPeriod    int `json:"ema-period" yaml:"ema-period"`       // EMA of the MACD line, 10
}

func (c *MACDConfig) JSON() ([]byte, error) {
	return json.Marshal(c)
}

func MACDConfigDefaults() *MACDConfig {
	return &MACDConfig{
		FastPeriod:   12,
		SlowPeriod:   26,
		SignalPeriod: 9,
		EMAPeriod:    10,
	}
}

func NewMACD(cfg *MACDConfig) *MACD {
	if cfg.FastPeriod == 0 {
		cfg.FastPeriod = 12
	}
	if cfg.SlowPeriod == 0 {
		cfg.SlowPeriod = 26
	}
	if cfg.SignalPeriod == 0 {
		cfg.SignalPeriod = 9
	}
	if cfg.EMAPeriod == 0 {
		cfg.EMAPeriod = 10
	}
	return &MACD{MACDConfig: cfg}
}

func (s *MACD) Name() string { return "MACD" }

func (s *MACD) Signals(candles []pricing.Candle) ([]backtest.Signal, error) {
	if len(candles) == 0 {
		return nil, nil
	}

	closes := pricing.Closes(candles)

	// The MACD signal line is unused here; this strategy compares the MACD
	// line against its own EMA instead.
	macdLine, _, err := indicators.MACD(closes, s.FastPeriod, s.SlowPeriod, s.SignalPeriod)
	if err != nil {
		return nil, err
	}
	macdEMA, err := indicators.EMA(macdLine, s.EMAPeriod)
	if err != nil {
		return nil, err
	}

	signals := make([]backtest.Signal, len(candles))
	for i := range candles {
		switch {
		case macdLine[i] > macdEMA[i]:
			signals[i] = backtest.Buy
		case macdLine[i] < macdEMA[i]:
			signals[i] = backtest.Sell
		}
	}
	return signals, nil
}
