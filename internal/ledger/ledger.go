// Package ledger settles a stand's day: income, expenses, profit, the new
// asset balance and the bankruptcy rule.
package ledger

import (
	"lemonade-stand/internal/model"
	"lemonade-stand/internal/money"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// SignCost is the price of one advertising sign.
var SignCost = money.Dollars("0.15")

// StartingAssets is what every stand begins a new game with.
var StartingAssets = money.Dollars("2.00")

// Expenses is the cost of a decision at the given lemonade cost per glass.
func Expenses(d model.PlayerDecision, costCents int) decimal.Decimal {
	signs := SignCost.Mul(decimal.NewFromInt(int64(d.SignsToMake)))
	glasses := money.FromCents(costCents).Mul(decimal.NewFromInt(int64(d.GlassesToMake)))
	return signs.Add(glasses)
}

// Income is what sold glasses bring in at the decision's price.
func Income(d model.PlayerDecision, sold int) decimal.Decimal {
	return money.FromCents(d.PriceCents).Mul(decimal.NewFromInt(int64(sold)))
}

// BankruptcyThreshold is the balance at or below which a stand closes: the
// cost of a single glass of lemonade that day.
func BankruptcyThreshold(costCents int) decimal.Decimal {
	return money.FromCents(costCents)
}

// Settle applies one day's trading to p and reports the outcome. A stand
// that was already bankrupt is left untouched and reported as skipped.
//
// The bankruptcy check compares the exact post-trade balance (floored at
// zero) against the threshold; the stored balance is then rounded to the cent.
func Settle(p *model.PlayerState, d model.PlayerDecision, sold int, costCents int) model.DailyOutcome {
	if p.Bankrupt {
		return model.DailyOutcome{
			Stand:     p.Stand,
			Skipped:   true,
			NewAssets: p.Assets,
		}
	}

	if sold < 0 {
		sold = 0
	}
	if sold > d.GlassesToMake {
		sold = d.GlassesToMake
	}

	income := Income(d, sold)
	expenses := Expenses(d, costCents)
	profit := income.Sub(expenses)

	balance := p.Assets.Add(profit)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	bankrupt := balance.LessThanOrEqual(BankruptcyThreshold(costCents))

	p.Assets = money.RoundCents(balance)
	if bankrupt {
		p.Bankrupt = true
		log.Info("stand bankrupt", "stand", p.Stand, "assets", money.Format(p.Assets))
	}

	return model.DailyOutcome{
		Stand:         p.Stand,
		GlassesMade:   d.GlassesToMake,
		SignsMade:     d.SignsToMake,
		PriceCents:    d.PriceCents,
		GlassesSold:   sold,
		Income:        income,
		Expenses:      expenses,
		Profit:        profit,
		NewAssets:     p.Assets,
		NewlyBankrupt: bankrupt,
	}
}
