package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rustyeddy/tradebook/execution"
)

const tradeColumns = `trade_id, symbol, direction, quantity, entry_price, exit_price,
	open_time, close_time, commission, fees, realized_pl, tags, notes`

// GetTrade returns a single trade by ID.
func (j *SQLite) GetTrade(tradeID string) (Trade, error) {
	row := j.db.QueryRow(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE trade_id = ?`, tradeID)

	t, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Trade{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return Trade{}, err
	}
	return t, nil
}

// ListTrades returns every stored trade ordered by close time.
func (j *SQLite) ListTrades() ([]Trade, error) {
	return j.queryTrades(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY close_time ASC, trade_id ASC`)
}

// ListTradesClosedBetween returns trades whose close_time is within
// [start, end).
func (j *SQLite) ListTradesClosedBetween(start, end time.Time) ([]Trade, error) {
	return j.queryTrades(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE close_time >= ? AND close_time < ?
		ORDER BY close_time ASC, trade_id ASC`, start, end)
}

// ListExecutions returns every stored execution ordered by fill time,
// ties by insertion ID. This is the matcher's input order.
func (j *SQLite) ListExecutions() ([]execution.Execution, error) {
	rows, err := j.db.Query(`
		SELECT exec_id, symbol, side, quantity, price, filled_time, commission, fees
		FROM executions
		ORDER BY filled_time ASC, exec_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []execution.Execution
	for rows.Next() {
		var e execution.Execution
		var side string
		if err := rows.Scan(
			&e.ID, &e.Symbol, &side, &e.Quantity, &e.Price, &e.Time, &e.Commission, &e.Fees,
		); err != nil {
			return nil, err
		}
		e.Side = execution.Side(side)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListOpenLots returns the currently open exposure ordered by open time.
func (j *SQLite) ListOpenLots() ([]OpenLot, error) {
	rows, err := j.db.Query(`
		SELECT symbol, direction, quantity, price, open_time
		FROM open_lots
		ORDER BY open_time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OpenLot
	for rows.Next() {
		var l OpenLot
		if err := rows.Scan(&l.Symbol, &l.Direction, &l.Quantity, &l.Price, &l.OpenTime); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) queryTrades(query string, args ...any) ([]Trade, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (Trade, error) {
	var t Trade
	var tags string
	err := row.Scan(
		&t.TradeID, &t.Symbol, &t.Direction, &t.Quantity, &t.EntryPrice, &t.ExitPrice,
		&t.OpenTime, &t.CloseTime, &t.Commission, &t.Fees, &t.RealizedPL, &tags, &t.Notes,
	)
	if err != nil {
		return Trade{}, err
	}
	t.Tags = splitTags(tags)
	return t, nil
}
