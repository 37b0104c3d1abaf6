package journal

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rustyeddy/tradebook/sheet"
)

// Column names as written to file. Load-bearing strings: files written
// by earlier versions of the app use exactly these keys.
const (
	ColTradeID       = "Trade Id"
	ColTradingDate   = "Trading Date"
	ColOpenTime      = "Open Time"
	ColType          = "Type"
	ColPair          = "Pair"
	ColPosition      = "Position"
	ColTimeframe     = "Timeframe"
	ColRiskPct       = "Risk%"
	ColEntryPrice    = "Entry Price"
	ColStopLoss      = "Stop loss"
	ColTakeProfit    = "Take Profit"
	ColClosingDate   = "Closing Date"
	ColCloseTime     = "Close Time"
	ColProfitLoss    = "Profit/Loss"
	ColChartImage    = "Chart Image"
	ColEmotionBefore = "Emotion Before"
	ColEmotionAfter  = "Emotion After"
	ColNotes         = "Notes"
)

// Columns returns the canonical header in file order.
func Columns() []string {
	return []string{
		ColTradeID, ColTradingDate, ColOpenTime, ColType, ColPair,
		ColPosition, ColTimeframe, ColRiskPct, ColEntryPrice, ColStopLoss,
		ColTakeProfit, ColClosingDate, ColCloseTime, ColProfitLoss,
		ColChartImage, ColEmotionBefore, ColEmotionAfter, ColNotes,
	}
}

// ToRow maps a trade onto the canonical columns. Absent optional prices
// write as empty cells so "no stop loss" and "stop loss 0" stay
// distinct across a round trip.
func ToRow(t TradeRecord) sheet.Row {
	return sheet.Row{
		ColTradeID:       t.TradeID,
		ColTradingDate:   t.TradingDate,
		ColOpenTime:      t.OpenTime,
		ColType:          string(t.Type),
		ColPair:          t.Pair,
		ColPosition:      string(t.Position),
		ColTimeframe:     t.Timeframe,
		ColRiskPct:       formatFloat(t.RiskPercentage),
		ColEntryPrice:    formatFloat(t.EntryPrice),
		ColStopLoss:      formatOptional(t.StopLoss),
		ColTakeProfit:    formatOptional(t.TakeProfit),
		ColClosingDate:   t.ClosingDate,
		ColCloseTime:     t.CloseTime,
		ColProfitLoss:    fmt.Sprintf("%.2f", t.ProfitLoss),
		ColChartImage:    t.ChartImage,
		ColEmotionBefore: t.EmotionBefore,
		ColEmotionAfter:  t.EmotionAfter,
		ColNotes:         t.Notes,
	}
}

// ToTrade converts one raw row back into a trade, substituting a
// default for every cell that is missing, unparsable or non-finite. It
// never fails:
// a hand-edited spreadsheet loads with zeroes where its numbers were
// bad. The fallback per field is 0 for floats, nil for the optional
// prices, "" for text, crypto for Type and Long for Position. An id is
// derived from clockSeed and the row index only when the row carries
// none of its own, so rows that already have ids decode
// deterministically.
func ToTrade(row sheet.Row, index int, clockSeed int64) TradeRecord {
	t := TradeRecord{
		TradeID:        row[ColTradeID],
		TradingDate:    row[ColTradingDate],
		OpenTime:       row[ColOpenTime],
		Type:           Crypto,
		Pair:           row[ColPair],
		Position:       Long,
		Timeframe:      row[ColTimeframe],
		RiskPercentage: parseFloat(row[ColRiskPct]),
		EntryPrice:     parseFloat(row[ColEntryPrice]),
		StopLoss:       parseOptional(row[ColStopLoss]),
		TakeProfit:     parseOptional(row[ColTakeProfit]),
		ClosingDate:    row[ColClosingDate],
		CloseTime:      row[ColCloseTime],
		ProfitLoss:     parseFloat(row[ColProfitLoss]),
		ChartImage:     row[ColChartImage],
		EmotionBefore:  row[ColEmotionBefore],
		EmotionAfter:   row[ColEmotionAfter],
		Notes:          row[ColNotes],
	}
	if row[ColType] == string(Forex) {
		t.Type = Forex
	}
	if row[ColPosition] == string(Short) {
		t.Position = Short
	}
	if t.TradeID == "" {
		t.TradeID = strconv.FormatInt(clockSeed+int64(index), 10)
	}
	return t
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func formatOptional(x *float64) string {
	if x == nil {
		return ""
	}
	return strconv.FormatFloat(*x, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

func parseOptional(s string) *float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}
