// Package journal holds the trade ledger and its row codec: the
// bidirectional mapping between typed trade records (plus the two
// portfolio starting balances) and the flat rows the sheet engines
// store.
package journal

import "fmt"

// TradeType partitions the ledger into the two tracked portfolios.
type TradeType string

const (
	Crypto TradeType = "crypto"
	Forex  TradeType = "forex"
)

// Position is the direction of a trade.
type Position string

const (
	Long  Position = "Long"
	Short Position = "Short"
)

// TradeRecord is one journaled position. Dates and times are kept as
// the strings the user entered, no timezone normalization. StopLoss and
// TakeProfit are pointers so an absent stop survives a save/load cycle
// as absent rather than turning into zero.
type TradeRecord struct {
	TradeID        string    `json:"tradeId"`
	TradingDate    string    `json:"tradingDate"`
	OpenTime       string    `json:"openTime"`
	Type           TradeType `json:"type"`
	Pair           string    `json:"pair"`
	Position       Position  `json:"position"`
	Timeframe      string    `json:"timeframe"`
	RiskPercentage float64   `json:"riskPercentage"`
	EntryPrice     float64   `json:"entryPrice"`
	StopLoss       *float64  `json:"stopLoss"`
	TakeProfit     *float64  `json:"takeProfit"`
	ClosingDate    string    `json:"closingDate"`
	CloseTime      string    `json:"closeTime"`
	ProfitLoss     float64   `json:"profitLoss"`
	ChartImage     string    `json:"chartImage,omitempty"`
	EmotionBefore  string    `json:"emotionBefore"`
	EmotionAfter   string    `json:"emotionAfter"`
	Notes          string    `json:"notes"`
}

// Ledger is the full persisted state: trades in row order plus the two
// portfolio starting balances.
type Ledger struct {
	Trades                []TradeRecord `json:"trades"`
	StartingBalanceCrypto float64       `json:"startingBalanceCrypto"`
	StartingBalanceForex  float64       `json:"startingBalanceForex"`
}

// DefaultStartingBalance seeds both portfolios when a file carries no
// balance config row.
const DefaultStartingBalance float64 = 10000

// ValidationError reports a missing required request parameter, such as
// a create call with no file name.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Param)
}
