package backtest

import (
	"fmt"
	"io"
	"time"
)

// PrintResult writes a human-readable run summary: the trade list followed
// by the metrics block.
func PrintResult(w io.Writer, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, " Backtest Result: %s\n", r.Strategy)
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Run ID:        %s\n", r.RunID)
	if !r.Start.IsZero() {
		fmt.Fprintf(w, "Start:         %s\n", r.Start.Format(time.RFC3339))
		fmt.Fprintf(w, "End:           %s\n", r.End.Format(time.RFC3339))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trades")
	fmt.Fprintln(w, "--------------------------------------------------")
	if len(r.Trades) == 0 {
		fmt.Fprintln(w, "(none)")
	}
	for i, t := range r.Trades {
		fmt.Fprintf(w, "#%d | entry %s @ %.2f | exit %s @ %.2f | pnl %.2f | %s | %s\n",
			i+1,
			t.EntryTime.Format("2006-01-02 15:04"),
			t.EntryPrice,
			t.ExitTime.Format("2006-01-02 15:04"),
			t.ExitPrice,
			t.PnL,
			t.Status,
			t.Reason,
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance Metrics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total Trades:  %d\n", r.Metrics.TotalTrades)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", r.Metrics.WinRate)
	fmt.Fprintf(w, "Total PnL:     %.2f\n", r.Metrics.TotalPnL)
	fmt.Fprintf(w, "Average PnL:   %.2f\n", r.Metrics.AveragePnL)
	fmt.Fprintln(w)
}
