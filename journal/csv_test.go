package journal

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/execution"
)

const statement = `Symbol,Side,Filled,Price,Filled Time,Commission,Fees
AAPL,Buy,100,187.25,2024-03-15 10:30:45,0.99,0.12
AAPL,Sell,100,188.10,2024-03-15 11:02:00,0.99,0.12
MSFT,Buy,50,410.10,2024-03-15 10:45:00,,
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadExecutionsCSV(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "statement.csv", statement)

	raws, err := ReadExecutionsCSV(path)
	require.NoError(t, err)
	require.Len(t, raws, 3)

	assert.Equal(t, "AAPL", raws[0].Symbol)
	assert.Equal(t, "Buy", raws[0].Side)
	assert.Equal(t, "100", raws[0].Quantity)
	assert.Equal(t, "187.25", raws[0].Price)
	assert.Equal(t, "2024-03-15 10:30:45", raws[0].FilledTime)
	assert.Equal(t, "0.99", raws[0].Commission)

	// Optional cost columns may be empty.
	assert.Equal(t, "", raws[2].Commission)
	assert.Equal(t, "", raws[2].Fees)
}

func TestReadExecutionsCSVHeaderAliases(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "aliases.csv",
		"Ticker,Action,Qty,Fill Price,Time\nTSLA,sell,10,250.5,2024-03-15 14:00:00\n")

	raws, err := ReadExecutionsCSV(path)
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "TSLA", raws[0].Symbol)
	assert.Equal(t, "sell", raws[0].Side)
	assert.Equal(t, "10", raws[0].Quantity)
	assert.Equal(t, "250.5", raws[0].Price)
}

func TestReadExecutionsCSVMissingColumn(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "broken.csv", "Symbol,Side,Filled,Price\nAAPL,Buy,1,2\n")

	_, err := ReadExecutionsCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time")
}

func TestReadExecutionsCSVGzip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(statement))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "statement.csv.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	raws, err := ReadExecutionsCSV(path)
	require.NoError(t, err)
	assert.Len(t, raws, 3)
}

func TestReadExecutionsFeedsNormalizer(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "statement.csv", statement)

	raws, err := ReadExecutionsCSV(path)
	require.NoError(t, err)

	execs, rejected := execution.NormalizeAll(raws)
	assert.Empty(t, rejected)
	require.Len(t, execs, 3)
	assert.Zero(t, execs[2].Commission) // coerced from the empty column
}

func TestWriteTradesCSV(t *testing.T) {
	t.Parallel()

	closeT := time.Date(2024, 3, 15, 11, 2, 0, 0, time.UTC)
	trades := []Trade{
		sampleTrade("T1", closeT, 85),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTradesCSV(&buf, trades))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "trade_id,symbol,direction"))
	assert.Contains(t, lines[1], "T1")
	assert.Contains(t, lines[1], "AAPL")
	assert.Contains(t, lines[1], "long")
	assert.Contains(t, lines[1], "2024-03-15T11:02:00Z")
}

func TestWriteTradesCSVEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteTradesCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1) // header only
}
