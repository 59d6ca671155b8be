package backtest

import (
	"time"

	"github.com/rustyeddy/backtester/pkg/id"
)

type Status string

const (
	StatusOpen Status = "OPEN"
	StatusWin  Status = "WIN"
	StatusLoss Status = "LOSS"
)

// Trade is one round-trip position. Entry fields are set at creation and
// never change; exit fields are set exactly once when the trade closes.
type Trade struct {
	ID       string
	Strategy string

	EntryTime  time.Time
	EntryPrice float64

	ExitTime  time.Time
	ExitPrice float64

	PnL    float64
	Status Status
	Reason string // exit reason: "SellSignal" or "EndOfData"
}

func newTrade(strategy string, entryTime time.Time, entryPrice float64) *Trade {
	return &Trade{
		ID:         id.New(),
		Strategy:   strategy,
		EntryTime:  entryTime,
		EntryPrice: entryPrice,
		Status:     StatusOpen,
	}
}

// close settles the trade. PnL is (exit - entry) * positionSize; a trade that
// nets exactly zero counts as a LOSS, the strict >0 win rule.
func (t *Trade) close(exitTime time.Time, exitPrice, positionSize float64, reason string) {
	t.ExitTime = exitTime
	t.ExitPrice = exitPrice
	t.PnL = (exitPrice - t.EntryPrice) * positionSize
	t.Reason = reason

	if t.PnL > 0 {
		t.Status = StatusWin
	} else {
		t.Status = StatusLoss
	}
}
