package pricing

import "fmt"

// ValidateSeries checks the ordering precondition every downstream consumer
// assumes: timestamps strictly increasing, no duplicates. It does not check
// for uniform spacing; gaps are allowed.
func ValidateSeries(candles []Candle) error {
	for i := 1; i < len(candles); i++ {
		prev, cur := candles[i-1].Time, candles[i].Time
		if !cur.After(prev) {
			return fmt.Errorf("candle %d at %s is not after candle %d at %s",
				i, cur.Format("2006-01-02T15:04:05Z07:00"),
				i-1, prev.Format("2006-01-02T15:04:05Z07:00"))
		}
	}
	return nil
}

// Closes extracts the close price series, the input most indicators consume.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}
