package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVJournalHeaders(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	runsPath := filepath.Join(dir, "runs.csv")

	j, err := NewCSV(tradesPath, runsPath)
	require.NoError(t, err)
	assert.NoError(t, j.Close())

	tradesData, err := os.ReadFile(tradesPath)
	require.NoError(t, err)
	runsData, err := os.ReadFile(runsPath)
	require.NoError(t, err)

	tradesHeader, err := csv.NewReader(strings.NewReader(string(tradesData))).Read()
	require.NoError(t, err)
	runsHeader, err := csv.NewReader(strings.NewReader(string(runsData))).Read()
	require.NoError(t, err)

	wantTrades := []string{"trade_id", "run_id", "strategy", "entry_time", "entry_price", "exit_time", "exit_price", "pnl", "status", "reason"}
	assert.Equal(t, wantTrades, tradesHeader)

	wantRuns := []string{"run_id", "strategy", "symbol", "start", "end", "total_trades", "wins", "losses", "win_rate", "total_pnl", "average_pnl", "created"}
	assert.Equal(t, wantRuns, runsHeader)
}

func TestCSVJournalRecordTrade(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "trades.csv")
	runsPath := filepath.Join(dir, "runs.csv")

	j, err := NewCSV(tradesPath, runsPath)
	require.NoError(t, err)

	entry := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	exit := time.Date(2024, 1, 2, 4, 5, 6, 0, time.UTC)

	err = j.RecordTrade(TradeRecord{
		TradeID:    "T1",
		RunID:      "R1",
		Strategy:   "MACD",
		EntryTime:  entry,
		EntryPrice: 100.25,
		ExitTime:   exit,
		ExitPrice:  99.75,
		PnL:        -0.5,
		Status:     "LOSS",
		Reason:     "SellSignal",
	})
	require.NoError(t, err)
	require.NoError(t, j.Close())

	data, err := os.ReadFile(tradesPath)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one trade

	row := rows[1]
	assert.Equal(t, "T1", row[0])
	assert.Equal(t, "R1", row[1])
	assert.Equal(t, "MACD", row[2])
	assert.Equal(t, "2024-01-02T03:04:05Z", row[3])
	assert.Equal(t, "100.250000", row[4])
	assert.Equal(t, "-0.500000", row[7])
	assert.Equal(t, "LOSS", row[8])
	assert.Equal(t, "SellSignal", row[9])
}

func TestCSVJournalRecordRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	j, err := NewCSV(filepath.Join(dir, "trades.csv"), filepath.Join(dir, "runs.csv"))
	require.NoError(t, err)

	err = j.RecordRun(RunRecord{
		RunID:       "R1",
		Strategy:    "RSI-EMA",
		Symbol:      "BTCUSDT",
		Start:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		TotalTrades: 2,
		Wins:        0,
		Losses:      2,
		WinRate:     0,
		TotalPnL:    -5,
		AveragePnL:  -2.5,
		Created:     time.Date(2024, 1, 2, 0, 0, 1, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, j.Close())

	data, err := os.ReadFile(filepath.Join(dir, "runs.csv"))
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := rows[1]
	assert.Equal(t, "R1", row[0])
	assert.Equal(t, "RSI-EMA", row[1])
	assert.Equal(t, "BTCUSDT", row[2])
	assert.Equal(t, "2", row[5])
	assert.Equal(t, "-5.000000", row[9])
	assert.Equal(t, "-2.500000", row[10])
}
