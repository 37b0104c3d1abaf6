package journal

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/tradebook/sheet"
)

// Reserved values of the Type column marking synthetic rows. Older
// files wrote a bare "SUMMARY" label; it stays recognized on decode.
const (
	TypeSummaryLegacy    = "SUMMARY"
	TypeCryptoSummary    = "CRYPTO SUMMARY"
	TypeForexSummary     = "FOREX SUMMARY"
	TypePortfolioSummary = "PORTFOLIO SUMMARY"
	TypeBalanceConfig    = "BALANCE CONFIG"
)

// IsSynthetic reports whether a Type cell marks a non-trade row.
func IsSynthetic(typ string) bool {
	switch typ {
	case TypeSummaryLegacy, TypeCryptoSummary, TypeForexSummary,
		TypePortfolioSummary, TypeBalanceConfig:
		return true
	}
	return false
}

// GenerateSummaries computes the crypto, forex and portfolio summary
// rows from the current trade list. Summaries are derived data: rebuilt
// on every save, never read back in. Sums run on decimals so the
// two-decimal cells stay exact.
func GenerateSummaries(trades []TradeRecord, cryptoStart, forexStart float64) []sheet.Row {
	crypto := tally(trades, Crypto, cryptoStart)
	forex := tally(trades, Forex, forexStart)

	totalPL := crypto.pnl.Add(forex.pnl)
	portfolio := fmt.Sprintf("Total Portfolio: %s | Total P&L: %s | Total Trades: %d",
		crypto.current.Add(forex.current).StringFixed(2),
		totalPL.StringFixed(2),
		crypto.count+forex.count)

	return []sheet.Row{
		summaryRow(TypeCryptoSummary, crypto.pnl, crypto.notes()),
		summaryRow(TypeForexSummary, forex.pnl, forex.notes()),
		summaryRow(TypePortfolioSummary, totalPL, portfolio),
	}
}

type tallied struct {
	start   decimal.Decimal
	pnl     decimal.Decimal
	current decimal.Decimal
	count   int
	winRate float64
}

func tally(trades []TradeRecord, typ TradeType, start float64) tallied {
	s := tallied{start: decimal.NewFromFloat(start)}
	wins := 0
	for _, t := range trades {
		if t.Type != typ {
			continue
		}
		s.pnl = s.pnl.Add(decimal.NewFromFloat(t.ProfitLoss))
		s.count++
		if t.ProfitLoss > 0 {
			wins++
		}
	}
	s.current = s.start.Add(s.pnl)
	if s.count > 0 {
		s.winRate = math.Round(1000*float64(wins)/float64(s.count)) / 10
	}
	return s
}

func (s tallied) notes() string {
	return fmt.Sprintf("Starting: %s | Current: %s | Win Rate: %.1f%% | Trades: %d",
		s.start.StringFixed(2), s.current.StringFixed(2), s.winRate, s.count)
}

// summaryRow carries the reserved label, the subset P/L and the notes
// text; every other column is an empty string.
func summaryRow(typ string, pnl decimal.Decimal, notes string) sheet.Row {
	row := sheet.Row{}
	for _, col := range Columns() {
		row[col] = ""
	}
	row[ColType] = typ
	row[ColProfitLoss] = pnl.StringFixed(2)
	row[ColNotes] = notes
	return row
}
