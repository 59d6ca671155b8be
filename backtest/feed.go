package backtest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/backtester/pricing"
)

// CSVCandleFeed reads canonical candle CSV rows:
//
//	time,open,high,low,close,volume
//
// where time is RFC3339 or RFC3339Nano. A header row ("time,...") is
// allowed; empty and short rows are skipped.
type CSVCandleFeed struct {
	f      *os.File
	r      *csv.Reader
	symbol string

	sawFirst bool
}

func NewCSVCandleFeed(path, symbol string) (*CSVCandleFeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	return &CSVCandleFeed{f: f, r: r, symbol: symbol}, nil
}

func (f *CSVCandleFeed) Close() error {
	if f.f != nil {
		return f.f.Close()
	}
	return nil
}

func (f *CSVCandleFeed) Next() (pricing.Candle, bool, error) {
	for {
		row, err := f.r.Read()
		if err == io.EOF {
			return pricing.Candle{}, false, nil
		}
		if err != nil {
			return pricing.Candle{}, false, err
		}
		if len(row) == 0 {
			continue
		}

		// Allow a single header row
		if !f.sawFirst {
			f.sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "time") {
				continue
			}
		}

		c, ok, err := parseCandleRow(row)
		if err != nil {
			return pricing.Candle{}, false, err
		}
		if !ok {
			continue
		}
		c.Symbol = f.symbol
		return c, true, nil
	}
}

// ReadAll drains the feed into a slice. The feed is left at EOF; Close is
// still the caller's job.
func (f *CSVCandleFeed) ReadAll() ([]pricing.Candle, error) {
	var out []pricing.Candle
	for {
		c, ok, err := f.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, c)
	}
}

// ReadCandlesCSV loads a whole candle CSV file.
func ReadCandlesCSV(path, symbol string) ([]pricing.Candle, error) {
	feed, err := NewCSVCandleFeed(path, symbol)
	if err != nil {
		return nil, err
	}
	defer feed.Close()
	return feed.ReadAll()
}

// WriteCandlesCSV writes candles in the canonical format, header included.
func WriteCandlesCSV(w io.Writer, candles []pricing.Candle) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"time", "open", "high", "low", "close", "volume"}); err != nil {
		return err
	}
	for _, c := range candles {
		err := cw.Write([]string{
			c.Time.UTC().Format(time.RFC3339),
			fmtPrice(c.Open),
			fmtPrice(c.High),
			fmtPrice(c.Low),
			fmtPrice(c.Close),
			fmtPrice(c.Volume),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func fmtPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseCandleRow(row []string) (pricing.Candle, bool, error) {
	// Need: time,open,high,low,close,volume
	if len(row) < 6 {
		return pricing.Candle{}, false, nil
	}

	ts := strings.TrimSpace(row[0])
	if ts == "" {
		return pricing.Candle{}, false, nil
	}
	// Accept RFC3339 or RFC3339Nano.
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339Nano, ts)
		if err2 != nil {
			return pricing.Candle{}, false, fmt.Errorf("bad time %q: %w", ts, err)
		}
		t = t2
	}

	vals := make([]float64, 5)
	names := []string{"open", "high", "low", "close", "volume"}
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i+1]), 64)
		if err != nil {
			return pricing.Candle{}, false, fmt.Errorf("bad %s %q: %w", names[i], row[i+1], err)
		}
		vals[i] = v
	}

	return pricing.Candle{
		Time:   t,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, true, nil
}
