package bmsconv

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	tbl := DefaultTable()
	assert.Equal(t, 14, tbl.Len())

	r, ok := tbl.Rule(SignalChargeMaxCellSpecCurrent)
	require.True(t, ok)
	assert.Equal(t, 0.1, r.Factor)
	assert.Equal(t, -500.0, r.Offset)
	assert.Equal(t, Width16, r.Width)

	_, ok = tbl.Rule("bogus")
	assert.False(t, ok)

	rules := tbl.Rules()
	require.Len(t, rules, 14)
	assert.Equal(t, SignalAccumulatedCharge, rules[0].Name)
	assert.Equal(t, SignalSystemVoltage, rules[len(rules)-1].Name)
}

func TestNewTable(t *testing.T) {
	t.Run("override and extend", func(t *testing.T) {
		tbl, err := NewTable(
			Rule{Name: SignalSystemVoltage, Factor: 0.01, Width: Width16},
			Rule{Name: "pack_voltage", Factor: 0.1, Width: Width16},
		)
		require.NoError(t, err)
		assert.Equal(t, 15, tbl.Len())
		raw, err := tbl.Encode(SignalSystemVoltage, 100)
		require.NoError(t, err)
		assert.Equal(t, uint64(10000), raw)

		// built-ins untouched
		assert.Equal(t, uint16(1000), SystemVoltageConv(100))
		r, _ := BuiltinRule(SignalSystemVoltage)
		assert.Equal(t, 0.1, r.Factor)
	})
	t.Run("last duplicate wins", func(t *testing.T) {
		tbl, err := NewTable(
			Rule{Name: "x", Factor: 1, Width: Width8},
			Rule{Name: "x", Factor: 2, Width: Width8},
		)
		require.NoError(t, err)
		r, ok := tbl.Rule("x")
		require.True(t, ok)
		assert.Equal(t, 2.0, r.Factor)
	})
	t.Run("invalid rule", func(t *testing.T) {
		_, err := NewTable(Rule{Name: "x", Factor: 1, Width: Width8}, Rule{Name: "y", Width: Width8})
		require.ErrorIs(t, err, ErrInvalidRule)
		assert.ErrorContains(t, err, "rule 1:")
	})
}

func TestTable_Encode(t *testing.T) {
	tbl := DefaultTable()
	t.Run("Success", func(t *testing.T) {
		raw, err := tbl.Encode(SignalSystemCurrent, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(5000), raw)

		raw, err = tbl.Encode(SignalMasterTimer, 60)
		require.NoError(t, err)
		assert.Equal(t, uint64(600), raw)
	})
	t.Run("Wraps", func(t *testing.T) {
		raw, err := tbl.Encode(SignalCellMaxTemp, 250)
		require.NoError(t, err)
		// 290 mod 256
		assert.Equal(t, uint64(34), raw)
	})
	t.Run("Unknown signal", func(t *testing.T) {
		_, err := tbl.Encode("bogus", 1)
		require.ErrorIs(t, err, ErrUnknownSignal)
		assert.ErrorContains(t, err, `"bogus"`)
	})
	t.Run("Too wide", func(t *testing.T) {
		_, err := tbl.Encode(SignalCellMaxTemp, 300)
		require.ErrorIs(t, err, ErrValueTooWide)
		assert.ErrorContains(t, err, "cell_max_temp value 300 (max 255)")
	})
}

func TestTable_Decode(t *testing.T) {
	tbl := DefaultTable()
	v, err := tbl.Decode(SignalCellMinTemp, 65)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, v, 1e-9)

	_, err = tbl.Decode("bogus", 1)
	assert.ErrorIs(t, err, ErrUnknownSignal)

	_, err = tbl.Decode(SignalSystemSOC, 256)
	assert.ErrorIs(t, err, ErrValueTooWide)
}
