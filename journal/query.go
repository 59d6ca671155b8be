package journal

import (
	"database/sql"
	"fmt"
	"time"
)

const tradeColumns = `trade_id, run_id, strategy, entry_time, entry_price, exit_time, exit_price, pnl, status, reason`

// ListTradesByRunID returns all trades journaled under one run, oldest exit first.
func (j *SQLiteJournal) ListTradesByRunID(runID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(
		`SELECT `+tradeColumns+` FROM trades WHERE run_id = ? ORDER BY exit_time ASC`,
		runID)
	if err != nil {
		return nil, err
	}
	return scanTrades(rows)
}

// ListTradesByStrategy returns all trades a named strategy produced across runs.
func (j *SQLiteJournal) ListTradesByStrategy(strategy string) ([]TradeRecord, error) {
	rows, err := j.db.Query(
		`SELECT `+tradeColumns+` FROM trades WHERE strategy = ? ORDER BY exit_time ASC`,
		strategy)
	if err != nil {
		return nil, err
	}
	return scanTrades(rows)
}

// ListTradesClosedBetween returns trades with exit_time in [start, end).
func (j *SQLiteJournal) ListTradesClosedBetween(start, end time.Time) ([]TradeRecord, error) {
	rows, err := j.db.Query(
		`SELECT `+tradeColumns+` FROM trades WHERE exit_time >= ? AND exit_time < ? ORDER BY exit_time ASC`,
		start, end)
	if err != nil {
		return nil, err
	}
	return scanTrades(rows)
}

// GetRun loads one run summary by ID.
func (j *SQLiteJournal) GetRun(runID string) (RunRecord, error) {
	var r RunRecord
	err := j.db.QueryRow(`
		SELECT run_id, strategy, symbol, start_time, end_time,
		       total_trades, wins, losses, win_rate, total_pnl, average_pnl, created
		FROM runs WHERE run_id = ?`, runID).Scan(
		&r.RunID, &r.Strategy, &r.Symbol, &r.Start, &r.End,
		&r.TotalTrades, &r.Wins, &r.Losses, &r.WinRate, &r.TotalPnL, &r.AveragePnL,
		&r.Created,
	)
	if err == sql.ErrNoRows {
		return RunRecord{}, fmt.Errorf("run %q not found", runID)
	}
	return r, err
}

func scanTrades(rows *sql.Rows) ([]TradeRecord, error) {
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		var t TradeRecord
		if err := rows.Scan(
			&t.TradeID, &t.RunID, &t.Strategy, &t.EntryTime, &t.EntryPrice,
			&t.ExitTime, &t.ExitPrice, &t.PnL, &t.Status, &t.Reason,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
