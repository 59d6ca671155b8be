package backtest

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rustyeddy/backtester/journal"
	"github.com/rustyeddy/backtester/pkg/id"
	"github.com/rustyeddy/backtester/pricing"
)

// SignalGenerator maps a candle series to a signal per candle using only
// information available at or before that candle.
type SignalGenerator interface {
	Name() string
	Signals(candles []pricing.Candle) ([]Signal, error)
}

// Result is a lightweight summary of one backtest run.
type Result struct {
	RunID    string
	Strategy string

	Trades  []Trade
	Metrics Metrics

	Start time.Time
	End   time.Time
}

// Runner wires one strategy to one candle series and drives the engine.
// Each Runner owns an independent engine instance; runners for different
// strategies share nothing and may execute concurrently.
type Runner struct {
	Candles      []pricing.Candle
	Strategy     SignalGenerator
	PositionSize float64

	// Journal, when non-nil, receives every closed trade plus the run summary.
	Journal journal.Journal
}

// Run generates signals, executes the simulation, and journals the outcome.
func (r *Runner) Run() (Result, error) {
	if r.Strategy == nil {
		return Result{}, fmt.Errorf("backtest: Strategy is required")
	}

	name := r.Strategy.Name()
	runID := id.New()

	slog.Debug("starting backtest",
		"run_id", runID,
		"strategy", name,
		"candles", len(r.Candles))

	signals, err := r.Strategy.Signals(r.Candles)
	if err != nil {
		return Result{}, fmt.Errorf("generate signals: %w", err)
	}

	engine := NewEngine(name, r.PositionSize)
	trades, err := engine.Run(r.Candles, signals)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		RunID:    runID,
		Strategy: name,
		Trades:   trades,
		Metrics:  ComputeMetrics(trades),
	}
	if n := len(r.Candles); n > 0 {
		res.Start = r.Candles[0].Time
		res.End = r.Candles[n-1].Time
	}

	if r.Journal != nil {
		if err := r.record(res); err != nil {
			return Result{}, fmt.Errorf("journal: %w", err)
		}
	}

	return res, nil
}

func (r *Runner) record(res Result) error {
	for _, t := range res.Trades {
		rec := journal.TradeRecord{
			TradeID:    t.ID,
			RunID:      res.RunID,
			Strategy:   t.Strategy,
			EntryTime:  t.EntryTime,
			EntryPrice: t.EntryPrice,
			ExitTime:   t.ExitTime,
			ExitPrice:  t.ExitPrice,
			PnL:        t.PnL,
			Status:     string(t.Status),
			Reason:     t.Reason,
		}
		if err := r.Journal.RecordTrade(rec); err != nil {
			return err
		}
	}

	wins := 0
	for _, t := range res.Trades {
		if t.Status == StatusWin {
			wins++
		}
	}

	symbol := ""
	if len(r.Candles) > 0 {
		symbol = r.Candles[0].Symbol
	}

	return r.Journal.RecordRun(journal.RunRecord{
		RunID:       res.RunID,
		Strategy:    res.Strategy,
		Symbol:      symbol,
		Start:       res.Start,
		End:         res.End,
		TotalTrades: res.Metrics.TotalTrades,
		Wins:        wins,
		Losses:      res.Metrics.TotalTrades - wins,
		WinRate:     res.Metrics.WinRate,
		TotalPnL:    res.Metrics.TotalPnL,
		AveragePnL:  res.Metrics.AveragePnL,
		Created:     time.Now().UTC(),
	})
}
