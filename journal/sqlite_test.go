package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLiteJournal {
	t.Helper()

	j, err := NewSQLite(filepath.Join(t.TempDir(), "journal.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func tradeAt(id, runID string, exit time.Time, pnl float64) TradeRecord {
	status := "LOSS"
	if pnl > 0 {
		status = "WIN"
	}
	return TradeRecord{
		TradeID:    id,
		RunID:      runID,
		Strategy:   "MACD",
		EntryTime:  exit.Add(-time.Hour),
		EntryPrice: 100,
		ExitTime:   exit,
		ExitPrice:  100 + pnl,
		PnL:        pnl,
		Status:     status,
		Reason:     "SellSignal",
	}
}

func TestSQLiteJournalTrades(t *testing.T) {
	j := newTestSQLite(t)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, j.RecordTrade(tradeAt("T1", "R1", base, -1)))
	require.NoError(t, j.RecordTrade(tradeAt("T2", "R1", base.Add(time.Hour), 3)))
	require.NoError(t, j.RecordTrade(tradeAt("T3", "R2", base.Add(2*time.Hour), 2)))

	t.Run("by run id", func(t *testing.T) {
		recs, err := j.ListTradesByRunID("R1")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "T1", recs[0].TradeID)
		assert.Equal(t, "T2", recs[1].TradeID)
		assert.Equal(t, -1.0, recs[0].PnL)
		assert.Equal(t, "LOSS", recs[0].Status)
	})

	t.Run("by strategy", func(t *testing.T) {
		recs, err := j.ListTradesByStrategy("MACD")
		require.NoError(t, err)
		assert.Len(t, recs, 3)

		recs, err = j.ListTradesByStrategy("RSI-EMA")
		require.NoError(t, err)
		assert.Empty(t, recs)
	})

	t.Run("closed between is half open", func(t *testing.T) {
		recs, err := j.ListTradesClosedBetween(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "T1", recs[0].TradeID)
		assert.Equal(t, "T2", recs[1].TradeID)
	})

	t.Run("duplicate trade id rejected", func(t *testing.T) {
		err := j.RecordTrade(tradeAt("T1", "R9", base, 1))
		assert.Error(t, err)
	})
}

func TestSQLiteJournalRuns(t *testing.T) {
	j := newTestSQLite(t)

	run := RunRecord{
		RunID:       "R1",
		Strategy:    "MACD",
		Symbol:      "BTCUSDT",
		Start:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		TotalTrades: 2,
		Wins:        1,
		Losses:      1,
		WinRate:     50,
		TotalPnL:    2,
		AveragePnL:  1,
		Created:     time.Date(2024, 6, 2, 0, 0, 1, 0, time.UTC),
	}
	require.NoError(t, j.RecordRun(run))

	got, err := j.GetRun("R1")
	require.NoError(t, err)
	assert.Equal(t, run.Strategy, got.Strategy)
	assert.Equal(t, run.Symbol, got.Symbol)
	assert.Equal(t, run.TotalTrades, got.TotalTrades)
	assert.Equal(t, run.WinRate, got.WinRate)
	assert.True(t, got.Start.Equal(run.Start))
	assert.True(t, got.End.Equal(run.End))

	_, err = j.GetRun("missing")
	assert.Error(t, err)
}
