package journal

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/tradebook/sheet"
)

func ptr(x float64) *float64 { return &x }

func sampleTrade() TradeRecord {
	return TradeRecord{
		TradeID:        "T1",
		TradingDate:    "2024-01-02",
		OpenTime:       "09:30",
		Type:           Forex,
		Pair:           "EUR/USD",
		Position:       Short,
		Timeframe:      "4H",
		RiskPercentage: 1.5,
		EntryPrice:     1.0851,
		StopLoss:       ptr(1.0911),
		TakeProfit:     ptr(1.0731),
		ClosingDate:    "2024-01-03",
		CloseTime:      "14:45",
		ProfitLoss:     -12.5,
		ChartImage:     "charts/abc.png",
		EmotionBefore:  "calm",
		EmotionAfter:   "frustrated",
		Notes:          "late entry",
	}
}

func TestRowRoundTrip(t *testing.T) {
	t.Parallel()

	want := sampleTrade()
	got := ToTrade(ToRow(want), 0, 1700000000000)

	assert.Equal(t, want, got)
}

func TestToRowColumns(t *testing.T) {
	t.Parallel()

	row := ToRow(sampleTrade())

	assert.Equal(t, "T1", row[ColTradeID])
	assert.Equal(t, "forex", row[ColType])
	assert.Equal(t, "Short", row[ColPosition])
	assert.Equal(t, "1.5", row[ColRiskPct])
	assert.Equal(t, "-12.50", row[ColProfitLoss])
	assert.Equal(t, "1.0911", row[ColStopLoss])

	for _, col := range Columns() {
		_, ok := row[col]
		assert.True(t, ok, "missing column %q", col)
	}
}

func TestToRowAbsentStopLossIsEmptyNotZero(t *testing.T) {
	t.Parallel()

	tr := sampleTrade()
	tr.StopLoss = nil
	tr.TakeProfit = ptr(0)

	row := ToRow(tr)
	assert.Equal(t, "", row[ColStopLoss])
	assert.Equal(t, "0", row[ColTakeProfit])

	back := ToTrade(row, 0, 0)
	assert.Nil(t, back.StopLoss)
	if assert.NotNil(t, back.TakeProfit) {
		assert.Equal(t, 0.0, *back.TakeProfit)
	}
}

func TestToTradeDefaults(t *testing.T) {
	t.Parallel()

	got := ToTrade(sheet.Row{}, 3, 1700000000000)

	assert.Equal(t, strconv.FormatInt(1700000000003, 10), got.TradeID)
	assert.Equal(t, Crypto, got.Type)
	assert.Equal(t, Long, got.Position)
	assert.Equal(t, 0.0, got.EntryPrice)
	assert.Equal(t, 0.0, got.RiskPercentage)
	assert.Equal(t, 0.0, got.ProfitLoss)
	assert.Nil(t, got.StopLoss)
	assert.Nil(t, got.TakeProfit)
	assert.Equal(t, "", got.Pair)
}

func TestToTradeMalformedCellsFallBack(t *testing.T) {
	t.Parallel()

	row := sheet.Row{
		ColTradeID:    "T9",
		ColEntryPrice: "abc",
		ColRiskPct:    "NaN",
		ColStopLoss:   "not-a-number",
		ColTakeProfit: "Inf",
		ColProfitLoss: "12.75",
		ColType:       "stocks",
		ColPosition:   "sideways",
	}

	got := ToTrade(row, 0, 0)

	assert.Equal(t, "T9", got.TradeID)
	assert.Equal(t, 0.0, got.EntryPrice)
	assert.Equal(t, 0.0, got.RiskPercentage)
	assert.Nil(t, got.StopLoss)
	assert.Nil(t, got.TakeProfit)
	assert.Equal(t, 12.75, got.ProfitLoss)
	assert.Equal(t, Crypto, got.Type)
	assert.Equal(t, Long, got.Position)
}

func TestToTradeNonFiniteCellsFallBack(t *testing.T) {
	t.Parallel()

	// strconv accepts "Inf"; the codec must not, or the next save
	// would feed an infinity into the summary sums
	for _, cell := range []string{"Inf", "+Inf", "-Inf", "Infinity", "NaN"} {
		got := ToTrade(sheet.Row{
			ColTradeID:    "T1",
			ColProfitLoss: cell,
			ColEntryPrice: cell,
			ColStopLoss:   cell,
		}, 0, 0)

		assert.Equal(t, 0.0, got.ProfitLoss, cell)
		assert.Equal(t, 0.0, got.EntryPrice, cell)
		assert.Nil(t, got.StopLoss, cell)
	}
}

func TestToTradeExistingIDIsDeterministic(t *testing.T) {
	t.Parallel()

	row := ToRow(sampleTrade())

	a := ToTrade(row, 0, 1)
	b := ToTrade(row, 5, 99999)
	assert.Equal(t, a, b)
}
