package journal

import "time"

// TradeRecord is one closed round-trip as persisted by a journal.
type TradeRecord struct {
	TradeID    string
	RunID      string
	Strategy   string
	EntryTime  time.Time
	EntryPrice float64
	ExitTime   time.Time
	ExitPrice  float64
	PnL        float64
	Status     string
	Reason     string
}

// RunRecord is the summary row for one strategy run over one dataset.
type RunRecord struct {
	RunID    string
	Strategy string
	Symbol   string
	Start    time.Time
	End      time.Time

	TotalTrades int
	Wins        int
	Losses      int
	WinRate     float64
	TotalPnL    float64
	AveragePnL  float64

	Created time.Time
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordRun(RunRecord) error
	Close() error
}
