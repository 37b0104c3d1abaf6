package journal

import (
	"time"

	"github.com/rustyeddy/tradebook/sheet"
)

// Serializer turns a whole ledger into the flat row sequence the sheet
// engines store, and back. Clock seeds the ids generated for rows that
// arrive without one; tests pin it.
type Serializer struct {
	Clock func() time.Time
}

func NewSerializer() *Serializer {
	return &Serializer{Clock: time.Now}
}

// Encode renders the save shape: every trade in order, the three
// summary rows, then the balance config row.
func (s *Serializer) Encode(trades []TradeRecord, cryptoStart, forexStart float64) []sheet.Row {
	rows := make([]sheet.Row, 0, len(trades)+4)
	for _, t := range trades {
		rows = append(rows, ToRow(t))
	}
	rows = append(rows, GenerateSummaries(trades, cryptoStart, forexStart)...)
	return append(rows, EncodeBalances(cryptoStart, forexStart))
}

// EncodeNew renders the create-file shape: trades plus the balance
// config row, no summaries. Both shapes decode identically; existing
// files were written either way.
func (s *Serializer) EncodeNew(trades []TradeRecord, cryptoStart, forexStart float64) []sheet.Row {
	rows := make([]sheet.Row, 0, len(trades)+1)
	for _, t := range trades {
		rows = append(rows, ToRow(t))
	}
	return append(rows, EncodeBalances(cryptoStart, forexStart))
}

// Decode rebuilds a ledger from raw rows: balances are recovered first
// (the config row must be seen before any filtering), synthetic rows
// are dropped, and each remaining row becomes one trade. Decode never
// fails; only the underlying row source can, inside the sheet engines.
func (s *Serializer) Decode(rows []sheet.Row) Ledger {
	cryptoStart, forexStart := DecodeBalances(rows)

	seed := s.Clock().UnixMilli()
	trades := make([]TradeRecord, 0, len(rows))
	for _, row := range rows {
		if IsSynthetic(row[ColType]) {
			continue
		}
		trades = append(trades, ToTrade(row, len(trades), seed))
	}
	return Ledger{
		Trades:                trades,
		StartingBalanceCrypto: cryptoStart,
		StartingBalanceForex:  forexStart,
	}
}
