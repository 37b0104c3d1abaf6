package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradebook/sheet"
)

func TestBalanceRoundTrip(t *testing.T) {
	t.Parallel()

	row := EncodeBalances(10000, 7500)
	assert.Equal(t, TypeBalanceConfig, row[ColType])
	assert.Equal(t, "Crypto Starting: 10000 | Forex Starting: 7500", row[ColNotes])

	c, f := DecodeBalances([]sheet.Row{row})
	assert.Equal(t, 10000.0, c)
	assert.Equal(t, 7500.0, f)
}

func TestDecodeBalancesDefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	c, f := DecodeBalances([]sheet.Row{
		ToRow(sampleTrade()),
	})
	assert.Equal(t, DefaultStartingBalance, c)
	assert.Equal(t, DefaultStartingBalance, f)
}

func TestDecodeBalancesDefaultsOnGarbledNotes(t *testing.T) {
	t.Parallel()

	row := sheet.Row{
		ColType:  TypeBalanceConfig,
		ColNotes: "someone edited this cell",
	}
	c, f := DecodeBalances([]sheet.Row{row})
	assert.Equal(t, DefaultStartingBalance, c)
	assert.Equal(t, DefaultStartingBalance, f)
}

func TestDecodeBalancesUsesFirstConfigRow(t *testing.T) {
	t.Parallel()

	rows := []sheet.Row{
		EncodeBalances(1234.5, 678.9),
		EncodeBalances(1, 2),
	}
	c, f := DecodeBalances(rows)
	assert.Equal(t, 1234.5, c)
	assert.Equal(t, 678.9, f)
}
