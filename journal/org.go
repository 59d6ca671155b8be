package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for pasting into a journal.
// It purposely includes narrative placeholders (Thesis/Execution/Review) while keeping all
// structured facts in a PROPERTIES drawer for easy search.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** Trade: %s (%s)", t.Strategy, shortID(t.TradeID))
	// Use RFC3339 for copy/paste friendliness.
	entry := t.EntryTime.UTC().Format(time.RFC3339)
	exit := t.ExitTime.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.TradeID))
	b.WriteString(fmt.Sprintf(":RUN_ID: %s\n", t.RunID))
	b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", t.Strategy))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", t.ExitPrice))
	b.WriteString(fmt.Sprintf(":ENTRY_TIME: %s\n", entry))
	b.WriteString(fmt.Sprintf(":EXIT_TIME: %s\n", exit))
	b.WriteString(fmt.Sprintf(":PNL: %.2f\n", t.PnL))
	b.WriteString(fmt.Sprintf(":STATUS: %s\n", t.Status))
	b.WriteString(fmt.Sprintf(":REASON: %s\n", t.Reason))
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

// FormatRunOrg renders a run summary as an Org-mode block.
func FormatRunOrg(r RunRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("* Run: %s %s (%s)\n", r.Strategy, r.Symbol, shortID(r.RunID)))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":RUN_ID: %s\n", r.RunID))
	b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", r.Strategy))
	b.WriteString(fmt.Sprintf(":SYMBOL: %s\n", r.Symbol))
	b.WriteString(fmt.Sprintf(":START: %s\n", r.Start.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":END: %s\n", r.End.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf(":TOTAL_TRADES: %d\n", r.TotalTrades))
	b.WriteString(fmt.Sprintf(":WINS: %d\n", r.Wins))
	b.WriteString(fmt.Sprintf(":LOSSES: %d\n", r.Losses))
	b.WriteString(fmt.Sprintf(":WIN_RATE: %.2f\n", r.WinRate))
	b.WriteString(fmt.Sprintf(":TOTAL_PNL: %.2f\n", r.TotalPnL))
	b.WriteString(fmt.Sprintf(":AVERAGE_PNL: %.2f\n", r.AveragePnL))
	b.WriteString(":END:\n")
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
