package journal

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/rustyeddy/tradebook/execution"
)

// Header aliases seen across broker exports, lowercased. Every alias
// maps to one RawExecution field.
var columnAliases = map[string]string{
	"symbol":      "symbol",
	"ticker":      "symbol",
	"instrument":  "symbol",
	"side":        "side",
	"action":      "side",
	"buy/sell":    "side",
	"filled":      "quantity",
	"qty":         "quantity",
	"quantity":    "quantity",
	"units":       "quantity",
	"price":       "price",
	"avg price":   "price",
	"fill price":  "price",
	"filled time": "time",
	"time":        "time",
	"date":        "time",
	"datetime":    "time",
	"commission":  "commission",
	"comm":        "commission",
	"fees":        "fees",
	"fee":         "fees",
}

// ReadExecutionsCSV reads a broker statement into raw rows ready for
// normalization. Column order is free; headers are matched through
// columnAliases. Files ending in .gz or .xz are decompressed
// transparently, since brokers hand out compressed statements for
// anything beyond a few months.
func ReadExecutionsCSV(path string) ([]execution.RawExecution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		defer zr.Close()
		src = zr
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz %s: %w", path, err)
		}
		src = xr
	}

	return readExecutions(src)
}

func readExecutions(r io.Reader) ([]execution.RawExecution, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	fields := map[string]int{}
	for i, col := range header {
		if name, ok := columnAliases[strings.ToLower(strings.TrimSpace(col))]; ok {
			if _, dup := fields[name]; !dup {
				fields[name] = i
			}
		}
	}
	for _, required := range []string{"symbol", "side", "quantity", "price", "time"} {
		if _, ok := fields[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var out []execution.RawExecution
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		pick := func(name string) string {
			i, ok := fields[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}

		out = append(out, execution.RawExecution{
			Symbol:     pick("symbol"),
			Side:       pick("side"),
			Quantity:   pick("quantity"),
			Price:      pick("price"),
			FilledTime: pick("time"),
			Commission: pick("commission"),
			Fees:       pick("fees"),
		})
	}
	return out, nil
}

// WriteTradesCSV writes matched trades for spreadsheet use.
func WriteTradesCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{
		"trade_id", "symbol", "direction", "quantity", "entry_price", "exit_price",
		"open_time", "close_time", "commission", "fees", "realized_pl", "tags", "notes",
	}); err != nil {
		return err
	}

	for _, t := range trades {
		err := cw.Write([]string{
			t.TradeID,
			t.Symbol,
			t.Direction,
			f(t.Quantity),
			f(t.EntryPrice),
			f(t.ExitPrice),
			t.OpenTime.UTC().Format(time.RFC3339),
			t.CloseTime.UTC().Format(time.RFC3339),
			f(t.Commission),
			f(t.Fees),
			f(t.RealizedPL),
			joinTags(t.Tags),
			t.Notes,
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
