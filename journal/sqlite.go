package journal

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/tradebook/execution"
	"github.com/rustyeddy/tradebook/internal/id"
)

// SQLite persists executions, matched trades and open lots.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// RecordExecution stores one normalized execution. An empty ID gets a
// fresh ULID so imported rows are individually addressable.
func (j *SQLite) RecordExecution(e execution.Execution) error {
	if e.ID == "" {
		e.ID = id.New()
	}
	_, err := j.db.Exec(`
		INSERT INTO executions
		(exec_id, symbol, side, quantity, price, filled_time, commission, fees)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Symbol, string(e.Side), e.Quantity, e.Price, e.Time, e.Commission, e.Fees,
	)
	return err
}

// ReplaceResults swaps the stored matching output in one transaction.
// Matching is always a full recompute, so trades and open lots are
// replaced wholesale rather than patched.
func (j *SQLite) ReplaceResults(trades []Trade, open []OpenLot) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trades`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM open_lots`); err != nil {
		return err
	}

	for _, t := range trades {
		_, err := tx.Exec(`
			INSERT INTO trades
			(trade_id, symbol, direction, quantity, entry_price, exit_price,
			 open_time, close_time, commission, fees, realized_pl, tags, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.TradeID, t.Symbol, t.Direction, t.Quantity, t.EntryPrice, t.ExitPrice,
			t.OpenTime, t.CloseTime, t.Commission, t.Fees, t.RealizedPL,
			joinTags(t.Tags), t.Notes,
		)
		if err != nil {
			return err
		}
	}

	for _, l := range open {
		_, err := tx.Exec(`
			INSERT INTO open_lots (symbol, direction, quantity, price, open_time)
			VALUES (?, ?, ?, ?, ?)`,
			l.Symbol, l.Direction, l.Quantity, l.Price, l.OpenTime,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// AnnotateTrade sets tags and notes on a stored trade. Annotations are
// lost on the next full rebuild; the journal favors consistency of the
// matched set over sticky labels.
func (j *SQLite) AnnotateTrade(tradeID string, tags []string, notes string) error {
	res, err := j.db.Exec(`UPDATE trades SET tags = ?, notes = ? WHERE trade_id = ?`,
		joinTags(tags), notes, tradeID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", tradeID)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

// Tags round-trip through a single TEXT column. Order is preserved.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
