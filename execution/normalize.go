package execution

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Validation reasons. These are machine-readable; callers switch on
// them when reporting rejected rows.
const (
	ReasonMissingSymbol    = "missing-symbol"
	ReasonInvalidSide      = "invalid-side"
	ReasonNonPositiveQty   = "non-positive-quantity"
	ReasonInvalidPrice     = "invalid-price"
	ReasonInvalidTimestamp = "invalid-timestamp"
)

// ValidationError describes why a single raw row was rejected. Rows are
// rejected individually; a bad row never aborts the batch.
type ValidationError struct {
	Row    int    // zero-based index into the input batch, -1 if unknown
	Reason string // one of the Reason* constants
	Value  string // offending field value, if any
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("row %d: %s (%q)", e.Row, e.Reason, e.Value)
}

// timeLayouts are tried in order. Covers ISO exports, common broker
// spreadsheet formats, and Webull-style "filled time" stamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04:05 MST",
	"01/02/2006 15:04:05",
	"2006-01-02",
}

// Normalize validates one raw row and returns the canonical execution.
// Commission and fees default to zero when absent. Pure: no I/O, no
// clock reads.
func Normalize(raw RawExecution) (Execution, error) {
	return normalizeRow(raw, -1)
}

// NormalizeAll validates a batch, partitioning it into accepted
// executions and the errors for every rejected row. Input order is
// preserved in both outputs.
func NormalizeAll(raws []RawExecution) ([]Execution, []*ValidationError) {
	var (
		execs []Execution
		errs  []*ValidationError
	)
	for i, raw := range raws {
		ex, err := normalizeRow(raw, i)
		if err != nil {
			errs = append(errs, err.(*ValidationError))
			continue
		}
		execs = append(execs, ex)
	}
	return execs, errs
}

func normalizeRow(raw RawExecution, row int) (Execution, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw.Symbol))
	if symbol == "" {
		return Execution{}, &ValidationError{Row: row, Reason: ReasonMissingSymbol}
	}

	side, ok := parseSide(raw.Side)
	if !ok {
		return Execution{}, &ValidationError{Row: row, Reason: ReasonInvalidSide, Value: raw.Side}
	}

	qty, err := strconv.ParseFloat(strings.TrimSpace(raw.Quantity), 64)
	if err != nil || qty <= 0 {
		return Execution{}, &ValidationError{Row: row, Reason: ReasonNonPositiveQty, Value: raw.Quantity}
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(raw.Price), 64)
	if err != nil || price < 0 {
		return Execution{}, &ValidationError{Row: row, Reason: ReasonInvalidPrice, Value: raw.Price}
	}

	ts, ok := parseTime(raw.FilledTime)
	if !ok {
		return Execution{}, &ValidationError{Row: row, Reason: ReasonInvalidTimestamp, Value: raw.FilledTime}
	}

	return Execution{
		Symbol:     symbol,
		Side:       side,
		Quantity:   qty,
		Price:      price,
		Time:       ts,
		Commission: parseCost(raw.Commission),
		Fees:       parseCost(raw.Fees),
	}, nil
}

func parseSide(s string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "b", "bot", "bought":
		return Buy, true
	case "sell", "s", "sld", "sold":
		return Sell, true
	}
	return "", false
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseCost coerces an optional cost column to a non-negative number.
// Brokers report commissions as either positive costs or negative cash
// deltas, so the sign is dropped. Anything unparseable counts as zero.
func parseCost(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return math.Abs(v)
}
