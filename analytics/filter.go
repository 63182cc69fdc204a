// Package analytics computes the performance statistics behind every
// journal report: win rate, profit factor, streaks, drawdown and the
// composite score, plus the daily P&L and score series. All functions
// are pure over an explicit trade collection; recomputation is the
// caller's call.
package analytics

import (
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// Result categories for Criteria. Empty means All.
const (
	ResultAll       = "all"
	ResultWin       = "win"
	ResultLoss      = "loss"
	ResultBreakeven = "breakeven"
)

// Criteria selects the working set of trades. Each field is an
// independent predicate and the combination is a logical AND, so the
// evaluation order never changes the outcome.
type Criteria struct {
	From   time.Time // inclusive close-time lower bound; zero = unbounded
	To     time.Time // inclusive close-time upper bound; zero = unbounded
	Tags   []string  // match any listed tag; empty = no-op
	Result string    // ResultWin, ResultLoss, ResultBreakeven or ResultAll
}

// Filter returns the trades matching every predicate in c. The input
// slice is never modified.
func Filter(trades []journal.Trade, c Criteria) []journal.Trade {
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		if c.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (c Criteria) matches(t journal.Trade) bool {
	if !c.From.IsZero() && t.CloseTime.Before(c.From) {
		return false
	}
	if !c.To.IsZero() && t.CloseTime.After(c.To) {
		return false
	}
	if len(c.Tags) > 0 && !hasAnyTag(t, c.Tags) {
		return false
	}
	switch c.Result {
	case "", ResultAll:
	default:
		if Classify(t) != c.Result {
			return false
		}
	}
	return true
}

// Classify buckets a trade by the sign of its realized P&L.
func Classify(t journal.Trade) string {
	switch {
	case t.RealizedPL > 0:
		return ResultWin
	case t.RealizedPL < 0:
		return ResultLoss
	default:
		return ResultBreakeven
	}
}

func hasAnyTag(t journal.Trade, want []string) bool {
	for _, w := range want {
		for _, tag := range t.Tags {
			if tag == w {
				return true
			}
		}
	}
	return false
}
