package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, run_id, strategy, entry_time, entry_price, exit_time, exit_price, pnl, status, reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.RunID, t.Strategy, t.EntryTime, t.EntryPrice,
		t.ExitTime, t.ExitPrice, t.PnL, t.Status, t.Reason,
	)
	return err
}

func (j *SQLiteJournal) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, strategy, symbol, start_time, end_time, total_trades, wins, losses, win_rate, total_pnl, average_pnl, created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Strategy, r.Symbol, r.Start, r.End,
		r.TotalTrades, r.Wins, r.Losses, r.WinRate, r.TotalPnL, r.AveragePnL,
		r.Created,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
