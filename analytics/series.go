package analytics

import (
	"sort"
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// dayLayout keys calendar-day buckets.
const dayLayout = "2006-01-02"

// DayPnL is one calendar day's summed realized P&L.
type DayPnL struct {
	Date string // "2006-01-02" in the bucketing location
	PnL  float64
}

// DayScore is one calendar day's composite score, computed over that
// day's trades independently.
type DayScore struct {
	Date  string
	Score float64
}

// DailyPnL buckets trades by close date in loc (nil means time.Local)
// and returns the buckets sorted ascending. Days without trades are
// omitted; use FillDays for a continuous series.
func DailyPnL(trades []journal.Trade, loc *time.Location) []DayPnL {
	if loc == nil {
		loc = time.Local
	}

	sums := make(map[string]float64)
	for _, t := range trades {
		sums[t.CloseTime.In(loc).Format(dayLayout)] += t.RealizedPL
	}

	out := make([]DayPnL, 0, len(sums))
	for date, pnl := range sums {
		out = append(out, DayPnL{Date: date, PnL: pnl})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// DailyScore applies the composite-score formula to each day's trade
// subset independently and returns the per-day series sorted ascending.
func DailyScore(trades []journal.Trade, loc *time.Location) []DayScore {
	if loc == nil {
		loc = time.Local
	}

	byDay := make(map[string][]journal.Trade)
	for _, t := range trades {
		date := t.CloseTime.In(loc).Format(dayLayout)
		byDay[date] = append(byDay[date], t)
	}

	out := make([]DayScore, 0, len(byDay))
	for date, subset := range byDay {
		out = append(out, DayScore{Date: date, Score: dayScore(subset)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// dayScore computes the composite for a single day's trades. The
// day-win component degenerates to 1 or 0 for a one-day subset.
func dayScore(subset []journal.Trade) float64 {
	var wins int
	var grossProfit, grossLoss, net float64
	for _, t := range subset {
		net += t.RealizedPL
		switch Classify(t) {
		case ResultWin:
			wins++
			grossProfit += t.RealizedPL
		case ResultLoss:
			grossLoss += -t.RealizedPL
		}
	}

	winRate := ratio(float64(wins), float64(len(subset)))

	var pf float64
	var pfInf bool
	switch {
	case grossLoss > 0:
		pf = grossProfit / grossLoss
	case grossProfit > 0:
		pfInf = true
	}

	dayWin := 0.0
	if net > 0 {
		dayWin = 1.0
	}

	return score(winRate, pf, pfInf, dayWin)
}

// FillDays zero-fills the gaps between the first and last date of a
// daily P&L series, producing a continuous calendar run. An empty
// series stays empty.
func FillDays(days []DayPnL) []DayPnL {
	if len(days) == 0 {
		return days
	}

	first, err := time.Parse(dayLayout, days[0].Date)
	if err != nil {
		return days
	}
	last, err := time.Parse(dayLayout, days[len(days)-1].Date)
	if err != nil {
		return days
	}

	have := make(map[string]float64, len(days))
	for _, d := range days {
		have[d.Date] = d.PnL
	}

	var out []DayPnL
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		date := day.Format(dayLayout)
		out = append(out, DayPnL{Date: date, PnL: have[date]})
	}
	return out
}
