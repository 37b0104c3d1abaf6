package journal

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rustyeddy/tradebook/sheet"
)

// The two starting balances ride in the Notes cell of a BALANCE CONFIG
// row. Fragile, but files written by earlier versions carry exactly
// this text, so the pattern is part of the file format.
var balancePattern = regexp.MustCompile(`Crypto Starting: ([0-9eE.+-]+) \| Forex Starting: ([0-9eE.+-]+)`)

// EncodeBalances renders the balance config row.
func EncodeBalances(cryptoStart, forexStart float64) sheet.Row {
	row := sheet.Row{}
	for _, col := range Columns() {
		row[col] = ""
	}
	row[ColType] = TypeBalanceConfig
	row[ColNotes] = fmt.Sprintf("Crypto Starting: %s | Forex Starting: %s",
		formatFloat(cryptoStart), formatFloat(forexStart))
	return row
}

// DecodeBalances recovers the balances from the first BALANCE CONFIG
// row in the set. Best effort, not authoritative: when the row is
// missing or its notes no longer match the pattern, both balances fall
// back to the default and callers may override them explicitly.
func DecodeBalances(rows []sheet.Row) (cryptoStart, forexStart float64) {
	cryptoStart, forexStart = DefaultStartingBalance, DefaultStartingBalance
	for _, row := range rows {
		if row[ColType] != TypeBalanceConfig {
			continue
		}
		m := balancePattern.FindStringSubmatch(row[ColNotes])
		if m == nil {
			return
		}
		if c, err := strconv.ParseFloat(m[1], 64); err == nil {
			cryptoStart = c
		}
		if f, err := strconv.ParseFloat(m[2], 64); err == nil {
			forexStart = f
		}
		return
	}
	return
}
