// Package journal holds the round-trip trade model and its persistence:
// a SQLite store for executions, matched trades and open lots, plus CSV
// import/export and Org-mode formatting for the daily journal.
package journal

import (
	"time"

	"github.com/rustyeddy/tradebook/execution"
)

// Direction of the opening leg of a round-trip trade.
const (
	Long  = "long"
	Short = "short"
)

// Trade is one closed round trip: a portion of an opening execution
// matched against a portion of a closing execution. Immutable after
// creation; edits to the underlying executions re-run matching from
// scratch rather than patching trades in place.
type Trade struct {
	TradeID    string
	Symbol     string
	Direction  string // Long or Short
	Quantity   float64
	EntryPrice float64
	ExitPrice  float64
	OpenTime   time.Time
	CloseTime  time.Time
	Commission float64 // proportional share of both legs
	Fees       float64 // proportional share of both legs
	RealizedPL float64 // gross of commission and fees
	Tags       []string
	Notes      string
}

// NetPL is the realized P&L after commission and fees.
func (t Trade) NetPL() float64 {
	return t.RealizedPL - t.Commission - t.Fees
}

// OpenLot is exposure opened by an execution (or a remainder of one)
// that no later execution has closed. Open lots carry no realized P&L
// and are excluded from analytics.
type OpenLot struct {
	Symbol    string
	Direction string // Long or Short
	Quantity  float64
	Price     float64 // cost per unit
	OpenTime  time.Time
}

// Journal is the persistence boundary for the matching engine's inputs
// and outputs.
type Journal interface {
	RecordExecution(execution.Execution) error
	ListExecutions() ([]execution.Execution, error)
	ReplaceResults(trades []Trade, open []OpenLot) error
	ListTrades() ([]Trade, error)
	ListOpenLots() ([]OpenLot, error)
	Close() error
}
