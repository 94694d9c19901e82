package model

import "github.com/shopspring/decimal"

// PlayerState is one lemonade stand. Bankrupt is absorbing: once set, the
// stand makes no decisions and its assets never change again.
type PlayerState struct {
	Stand    int // 1-based stand number
	Assets   decimal.Decimal
	Bankrupt bool
}

// PlayerDecision is what a stand chose for the day. The input layer checks
// affordability before the decision reaches the engine.
type PlayerDecision struct {
	GlassesToMake int
	SignsToMake   int
	PriceCents    int
}
