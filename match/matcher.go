// Package match pairs opening and closing executions into round-trip
// trades using a strict per-symbol FIFO lot queue. It supports partial
// fills in both directions and is symmetric for short exposure: a Sell
// with no long lots queued opens a short lot that a later Buy closes.
package match

import (
	"sort"
	"time"

	"github.com/rustyeddy/tradebook/execution"
	"github.com/rustyeddy/tradebook/internal/id"
	"github.com/rustyeddy/tradebook/journal"
)

// lot is an open position awaiting a closing match. Remaining shrinks
// as closes arrive; the lot leaves the queue at zero.
type lot struct {
	side      execution.Side // side of the opening execution
	remaining float64
	price     float64 // cost per unit
	openTime  time.Time
	source    execution.Execution // original opening leg, for fee apportionment
}

// Result of a full matching pass.
type Result struct {
	Trades   []journal.Trade
	OpenLots []journal.OpenLot
}

// book is one symbol's FIFO queue. All queued lots share the same
// opening side: an execution on the opposite side drains the queue
// front-first before any remainder opens new lots on its own side.
type book struct {
	lots []lot
}

// Match runs a single matching pass over the given executions and
// returns the closed round trips plus whatever exposure is still open.
// Executions are sorted by fill time first; equal timestamps keep their
// input order, which is the FIFO tie-break.
//
// Quantity is conserved: per symbol, the matched quantity across all
// trades plus the remaining open-lot quantity equals the input
// quantity of the corresponding side.
func Match(execs []execution.Execution) Result {
	ordered := make([]execution.Execution, len(execs))
	copy(ordered, execs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Time.Before(ordered[j].Time)
	})

	books := make(map[string]*book)
	symbols := []string{} // first-seen order, so output is deterministic

	var trades []journal.Trade
	for _, ex := range ordered {
		b, ok := books[ex.Symbol]
		if !ok {
			b = &book{}
			books[ex.Symbol] = b
			symbols = append(symbols, ex.Symbol)
		}
		trades = append(trades, b.apply(ex)...)
	}

	var open []journal.OpenLot
	for _, sym := range symbols {
		for _, l := range books[sym].lots {
			open = append(open, journal.OpenLot{
				Symbol:    sym,
				Direction: direction(l.side),
				Quantity:  l.remaining,
				Price:     l.price,
				OpenTime:  l.openTime,
			})
		}
	}

	return Result{Trades: trades, OpenLots: open}
}

// apply consumes one execution. If the queue front offsets it, the
// execution closes lots FIFO until either its quantity or the queue is
// exhausted; any remainder (and any execution that offsets nothing)
// is pushed as a new lot.
func (b *book) apply(ex execution.Execution) []journal.Trade {
	var trades []journal.Trade
	remaining := ex.Quantity

	for remaining > 0 && len(b.lots) > 0 && b.lots[0].side == ex.Side.Opposite() {
		front := &b.lots[0]

		matched := remaining
		if front.remaining < matched {
			matched = front.remaining
		}

		trades = append(trades, closeMatch(front, ex, matched))

		front.remaining -= matched
		remaining -= matched
		if front.remaining <= 0 {
			b.lots = b.lots[1:]
		}
	}

	if remaining > 0 {
		b.lots = append(b.lots, lot{
			side:      ex.Side,
			remaining: remaining,
			price:     ex.Price,
			openTime:  ex.Time,
			source:    ex,
		})
	}

	return trades
}

// closeMatch emits one round trip for matched units of the given lot
// closed by ex. Commission and fees are apportioned from each leg by
// matched quantity over that leg's original quantity, so a leg split
// across several trades never double-counts its costs.
func closeMatch(l *lot, ex execution.Execution, matched float64) journal.Trade {
	var pl float64
	if l.side == execution.Buy {
		pl = matched * (ex.Price - l.price)
	} else {
		pl = matched * (l.price - ex.Price)
	}

	commission := share(l.source.Commission, matched, l.source.Quantity) +
		share(ex.Commission, matched, ex.Quantity)
	fees := share(l.source.Fees, matched, l.source.Quantity) +
		share(ex.Fees, matched, ex.Quantity)

	return journal.Trade{
		TradeID:    id.New(),
		Symbol:     ex.Symbol,
		Direction:  direction(l.side),
		Quantity:   matched,
		EntryPrice: l.price,
		ExitPrice:  ex.Price,
		OpenTime:   l.openTime,
		CloseTime:  ex.Time,
		Commission: commission,
		Fees:       fees,
		RealizedPL: pl,
	}
}

func share(cost, matched, legQty float64) float64 {
	if legQty <= 0 {
		return 0
	}
	return cost * matched / legQty
}

func direction(opening execution.Side) string {
	if opening == execution.Buy {
		return journal.Long
	}
	return journal.Short
}
