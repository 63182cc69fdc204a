package execution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() RawExecution {
	return RawExecution{
		Symbol:     "AAPL",
		Side:       "Buy",
		Quantity:   "100",
		Price:      "187.25",
		FilledTime: "2024-03-15 10:30:45",
		Commission: "0.99",
		Fees:       "0.12",
	}
}

func TestNormalizeValid(t *testing.T) {
	t.Parallel()

	ex, err := Normalize(validRaw())
	require.NoError(t, err)

	assert.Equal(t, "AAPL", ex.Symbol)
	assert.Equal(t, Buy, ex.Side)
	assert.InDelta(t, 100.0, ex.Quantity, 1e-9)
	assert.InDelta(t, 187.25, ex.Price, 1e-9)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC), ex.Time)
	assert.InDelta(t, 0.99, ex.Commission, 1e-9)
	assert.InDelta(t, 0.12, ex.Fees, 1e-9)
}

func TestNormalizeRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*RawExecution)
		reason string
	}{
		{
			name:   "missing_symbol",
			mutate: func(r *RawExecution) { r.Symbol = "  " },
			reason: ReasonMissingSymbol,
		},
		{
			name:   "invalid_side",
			mutate: func(r *RawExecution) { r.Side = "Hold" },
			reason: ReasonInvalidSide,
		},
		{
			name:   "zero_quantity",
			mutate: func(r *RawExecution) { r.Quantity = "0" },
			reason: ReasonNonPositiveQty,
		},
		{
			name:   "negative_quantity",
			mutate: func(r *RawExecution) { r.Quantity = "-5" },
			reason: ReasonNonPositiveQty,
		},
		{
			name:   "unparseable_quantity",
			mutate: func(r *RawExecution) { r.Quantity = "ten" },
			reason: ReasonNonPositiveQty,
		},
		{
			name:   "negative_price",
			mutate: func(r *RawExecution) { r.Price = "-1.5" },
			reason: ReasonInvalidPrice,
		},
		{
			name:   "bad_timestamp",
			mutate: func(r *RawExecution) { r.FilledTime = "yesterday" },
			reason: ReasonInvalidTimestamp,
		},
		{
			name:   "empty_timestamp",
			mutate: func(r *RawExecution) { r.FilledTime = "" },
			reason: ReasonInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := validRaw()
			tt.mutate(&raw)

			_, err := Normalize(raw)
			require.Error(t, err)

			ve, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
}

func TestNormalizeCostCoercion(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Commission = ""
	raw.Fees = "-0.50" // negative cash delta reported by the broker

	ex, err := Normalize(raw)
	require.NoError(t, err)

	assert.Zero(t, ex.Commission)
	assert.InDelta(t, 0.50, ex.Fees, 1e-9)
}

func TestNormalizeSideAliases(t *testing.T) {
	t.Parallel()

	for _, alias := range []string{"buy", "BUY", "B", "bot"} {
		raw := validRaw()
		raw.Side = alias
		ex, err := Normalize(raw)
		require.NoError(t, err, alias)
		assert.Equal(t, Buy, ex.Side)
	}
	for _, alias := range []string{"sell", "SELL", "S", "sld"} {
		raw := validRaw()
		raw.Side = alias
		ex, err := Normalize(raw)
		require.NoError(t, err, alias)
		assert.Equal(t, Sell, ex.Side)
	}
}

func TestNormalizeTimestampLayouts(t *testing.T) {
	t.Parallel()

	for _, stamp := range []string{
		"2024-03-15T10:30:45Z",
		"2024-03-15 10:30:45",
		"2024-03-15 10:30",
		"03/15/2024 10:30:45",
		"2024-03-15",
	} {
		raw := validRaw()
		raw.FilledTime = stamp
		_, err := Normalize(raw)
		assert.NoError(t, err, stamp)
	}
}

func TestNormalizeAllPartitions(t *testing.T) {
	t.Parallel()

	good := validRaw()
	bad := validRaw()
	bad.Quantity = "0"

	execs, errs := NormalizeAll([]RawExecution{good, bad, good})

	require.Len(t, execs, 2)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Row)
	assert.Equal(t, ReasonNonPositiveQty, errs[0].Reason)
}

func TestNormalizeAllEmpty(t *testing.T) {
	t.Parallel()

	execs, errs := NormalizeAll(nil)
	assert.Empty(t, execs)
	assert.Empty(t, errs)
}

func TestNormalizeUppercasesSymbol(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Symbol = " aapl "
	ex, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", ex.Symbol)
}
