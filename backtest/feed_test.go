package backtest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/backtester/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandleCSVRoundTrip(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	candles := []pricing.Candle{
		{Time: base, Open: 10, High: 12, Low: 9.5, Close: 11, Volume: 100},
		{Time: base.Add(time.Minute), Open: 11, High: 13, Low: 10.5, Close: 12.25, Volume: 150},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCandlesCSV(&buf, candles))

	path := filepath.Join(t.TempDir(), "candles.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	got, err := ReadCandlesCSV(path, "BTCUSDT")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "BTCUSDT", got[0].Symbol)
	assert.True(t, got[0].Time.Equal(base))
	assert.Equal(t, 10.0, got[0].Open)
	assert.Equal(t, 12.0, got[0].High)
	assert.Equal(t, 9.5, got[0].Low)
	assert.Equal(t, 11.0, got[0].Close)
	assert.Equal(t, 100.0, got[0].Volume)
	assert.Equal(t, 12.25, got[1].Close)
}

func TestCSVCandleFeedSkipsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv")
	data := "time,open,high,low,close,volume\n" +
		"2024-05-01T09:30:00Z,10,12,9.5,11,100\n" +
		"short,row\n" +
		"2024-05-01T09:31:00Z,11,13,10.5,12,150\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	got, err := ReadCandlesCSV(path, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCSVCandleFeedNoHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv")
	data := "2024-05-01T09:30:00Z,10,12,9.5,11,100\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	got, err := ReadCandlesCSV(path, "")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCSVCandleFeedBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv")
	data := "2024-05-01T09:30:00Z,ten,12,9.5,11,100\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := ReadCandlesCSV(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad open")
}

func TestCSVCandleFeedBadTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv")
	data := "yesterday,10,12,9.5,11,100\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := ReadCandlesCSV(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad time")
}

func TestCSVCandleFeedMissingFile(t *testing.T) {
	_, err := ReadCandlesCSV(filepath.Join(t.TempDir(), "nope.csv"), "")
	assert.Error(t, err)
}
