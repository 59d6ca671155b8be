package backtest

// Metrics is the summary reduction over a closed-trade list. It is computed
// fresh from the full list each time, never maintained incrementally.
type Metrics struct {
	TotalTrades int
	WinRate     float64 // percent of trades with PnL > 0
	TotalPnL    float64
	AveragePnL  float64
}

// ComputeMetrics reduces trades to summary statistics. An empty list yields
// all zeroes; the win rate and average guard against dividing by zero.
func ComputeMetrics(trades []Trade) Metrics {
	m := Metrics{TotalTrades: len(trades)}
	if m.TotalTrades == 0 {
		return m
	}

	wins := 0
	for _, t := range trades {
		if t.PnL > 0 {
			wins++
		}
		m.TotalPnL += t.PnL
	}

	m.WinRate = float64(wins) / float64(m.TotalTrades) * 100
	m.AveragePnL = m.TotalPnL / float64(m.TotalTrades)
	return m
}
