// Package execution defines the canonical execution record and the
// validation that turns raw broker rows into it. Everything downstream
// (matching, analytics, storage) works only with normalized executions.
package execution

import (
	"fmt"
	"time"
)

// Side of a fill as reported by the broker. Buy opens or adds to long
// exposure, Sell closes long exposure (or opens short exposure when no
// long lots remain).
type Side string

const (
	Buy  Side = "Buy"
	Sell Side = "Sell"
)

// RawExecution is one broker-shaped row before validation. All fields
// are strings because broker exports disagree on number and timestamp
// formats; Normalize owns all parsing so nothing downstream has to
// second-guess a field.
type RawExecution struct {
	Symbol     string
	Side       string
	Quantity   string
	Price      string
	FilledTime string
	Commission string
	Fees       string
}

// Execution is a validated, normalized fill. Immutable once created.
type Execution struct {
	ID         string
	Symbol     string
	Side       Side
	Quantity   float64
	Price      float64
	Time       time.Time
	Commission float64
	Fees       float64
}

// Opposite returns the offsetting side.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

func (e Execution) String() string {
	return fmt.Sprintf("%s %s %.4f @ %.5f (%s)",
		e.Symbol, e.Side, e.Quantity, e.Price, e.Time.Format(time.RFC3339))
}
