package analytics

import (
	"sort"
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// Composite score weights. Win rate carries 40%, the clamped profit
// factor 30%, day-win percentage 30%; the profit factor is capped at
// pfClamp before weighting so the infinite sentinel cannot push the
// score past 100.
const (
	weightWinRate = 0.4
	weightPF      = 0.3
	weightDayWin  = 0.3
	pfClamp       = 5.0
)

// Streak tracks consecutive non-losing results. Breakeven counts as
// non-losing; a loss resets the current run.
type Streak struct {
	Current int
	Longest int
}

// Snapshot is the full set of derived statistics over one (filtered)
// trade collection. It is recomputed from scratch whenever the
// collection changes and never mutated in place.
type Snapshot struct {
	Trades     int
	Wins       int
	Losses     int
	Breakevens int

	NetPL   float64
	AvgWin  float64
	AvgLoss float64 // absolute value
	WinRate float64 // 0..1

	// ProfitFactor is gross profit over gross loss. When gross loss is
	// zero but gross profit is positive the ratio is unbounded:
	// PFInfinite is set and ProfitFactor holds zero so serialized
	// output never carries Inf.
	ProfitFactor float64
	PFInfinite   bool

	DayWinPercent float64 // 0..1, winning days over trading days

	TradeStreak Streak
	DayStreak   Streak

	MaxDrawdown    float64 // <= 0
	RecoveryFactor float64

	Score float64 // 0..100 composite

	DailyPnL   []DayPnL
	DailyScore []DayScore
}

// Compute derives a Snapshot from the given trades. The input is not
// modified; trades are scanned in close-time order regardless of slice
// order. Day bucketing uses loc (nil means time.Local). An empty
// collection yields the zero Snapshot rather than NaNs.
func Compute(trades []journal.Trade, loc *time.Location) Snapshot {
	if loc == nil {
		loc = time.Local
	}

	var s Snapshot
	if len(trades) == 0 {
		return s
	}

	ordered := byCloseTime(trades)

	var grossProfit, grossLoss float64
	for _, t := range ordered {
		s.Trades++
		s.NetPL += t.RealizedPL
		switch Classify(t) {
		case ResultWin:
			s.Wins++
			grossProfit += t.RealizedPL
		case ResultLoss:
			s.Losses++
			grossLoss += -t.RealizedPL
		default:
			s.Breakevens++
		}
	}

	s.WinRate = ratio(float64(s.Wins), float64(s.Trades))
	s.AvgWin = ratio(grossProfit, float64(s.Wins))
	s.AvgLoss = ratio(grossLoss, float64(s.Losses))

	switch {
	case grossLoss > 0:
		s.ProfitFactor = grossProfit / grossLoss
	case grossProfit > 0:
		s.PFInfinite = true
	}

	days := DailyPnL(ordered, loc)
	s.DayWinPercent = dayWinPercent(days)
	s.TradeStreak = tradeStreak(ordered)
	s.DayStreak = dayStreak(days)
	s.MaxDrawdown = maxDrawdown(ordered)
	s.RecoveryFactor = recoveryFactor(s.NetPL, s.MaxDrawdown)
	s.Score = score(s.WinRate, s.ProfitFactor, s.PFInfinite, s.DayWinPercent)
	s.DailyPnL = days
	s.DailyScore = DailyScore(ordered, loc)

	return s
}

// byCloseTime returns a copy sorted ascending by close time, equal
// times keeping input order.
func byCloseTime(trades []journal.Trade) []journal.Trade {
	ordered := make([]journal.Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CloseTime.Before(ordered[j].CloseTime)
	})
	return ordered
}

func dayWinPercent(days []DayPnL) float64 {
	if len(days) == 0 {
		return 0
	}
	wins := 0
	for _, d := range days {
		if d.PnL > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(days))
}

// tradeStreak scans trades chronologically; the run grows while
// realized P&L stays non-negative and resets on a loss.
func tradeStreak(ordered []journal.Trade) Streak {
	var st Streak
	for _, t := range ordered {
		if t.RealizedPL < 0 {
			st.Current = 0
			continue
		}
		st.Current++
		if st.Current > st.Longest {
			st.Longest = st.Current
		}
	}
	return st
}

func dayStreak(days []DayPnL) Streak {
	var st Streak
	for _, d := range days {
		if d.PnL < 0 {
			st.Current = 0
			continue
		}
		st.Current++
		if st.Current > st.Longest {
			st.Longest = st.Current
		}
	}
	return st
}

// maxDrawdown walks the cumulative P&L curve tracking the running
// peak. The peak starts at zero so an all-losing set reports its full
// negative cumulative. Returned as a negative number, or 0 when the
// curve never dips below its peak.
func maxDrawdown(ordered []journal.Trade) float64 {
	var cumulative, peak, worst float64
	for _, t := range ordered {
		cumulative += t.RealizedPL
		if cumulative > peak {
			peak = cumulative
		}
		if dd := peak - cumulative; dd > worst {
			worst = dd
		}
	}
	return -worst
}

func recoveryFactor(netPL, maxDD float64) float64 {
	if maxDD == 0 {
		return 0
	}
	return netPL / -maxDD
}

// score blends win rate, clamped profit factor and day-win percentage
// into a bounded [0,100] composite.
func score(winRate, pf float64, pfInfinite bool, dayWin float64) float64 {
	if pfInfinite || pf > pfClamp {
		pf = pfClamp
	}
	s := 100 * (weightWinRate*winRate + weightPF*pf/pfClamp + weightDayWin*dayWin)
	if s > 100 {
		s = 100
	}
	if s < 0 {
		s = 0
	}
	return s
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
