package analytics

import (
	"fmt"
	"io"
)

// PrintSnapshot writes a plain-text performance report, the output of
// the stats command.
func PrintSnapshot(w io.Writer, s Snapshot) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance Snapshot")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:         %d\n", s.Trades)
	fmt.Fprintf(w, "Wins:           %d\n", s.Wins)
	fmt.Fprintf(w, "Losses:         %d\n", s.Losses)
	fmt.Fprintf(w, "Breakevens:     %d\n", s.Breakevens)
	fmt.Fprintf(w, "Win Rate:       %.2f%%\n", s.WinRate*100)
	fmt.Fprintf(w, "Avg Win:        %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss:       %.2f\n", s.AvgLoss)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Net P/L:        %.2f\n", s.NetPL)
	if s.PFInfinite {
		fmt.Fprintf(w, "Profit Factor:  inf (no losing trades)\n")
	} else {
		fmt.Fprintf(w, "Profit Factor:  %.2f\n", s.ProfitFactor)
	}
	fmt.Fprintf(w, "Day Win %%:      %.2f%%\n", s.DayWinPercent*100)
	fmt.Fprintf(w, "Max Drawdown:   %.2f\n", s.MaxDrawdown)
	fmt.Fprintf(w, "Recovery:       %.2f\n", s.RecoveryFactor)
	fmt.Fprintf(w, "Score:          %.1f / 100\n", s.Score)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Streaks")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trade Streak:   %d (longest %d)\n", s.TradeStreak.Current, s.TradeStreak.Longest)
	fmt.Fprintf(w, "Day Streak:     %d (longest %d)\n", s.DayStreak.Current, s.DayStreak.Longest)

	if len(s.DailyPnL) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Daily P/L")
		fmt.Fprintln(w, "--------------------------------------------------")
		var cumulative float64
		for _, d := range s.DailyPnL {
			cumulative += d.PnL
			fmt.Fprintf(w, "%s  %10.2f  (cum %10.2f)\n", d.Date, d.PnL, cumulative)
		}
	}

	fmt.Fprintln(w)
}
