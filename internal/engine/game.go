// Package engine runs a day of Lemonsville: weather, events, decisions and
// settlement for every stand, in stand order.
package engine

import (
	"lemonade-stand/internal/ledger"
	"lemonade-stand/internal/model"

	"github.com/shopspring/decimal"
)

// Cost notices announced on the day the lemonade price changes.
const (
	NoticeSugarEnds = "YOUR MOTHER QUIT GIVING YOU FREE SUGAR"
	NoticeMixPrice  = "THE PRICE OF LEMONADE MIX JUST WENT UP"
)

// GameState lives for a whole game: the stands and the once-per-game event
// flags.
type GameState struct {
	Players []*model.PlayerState
	Events  model.EventFlags
}

// NewGame starts n stands with the standard starting assets.
func NewGame(n int) *GameState {
	assets := make([]decimal.Decimal, n)
	for i := range assets {
		assets[i] = ledger.StartingAssets
	}
	return NewGameState(assets)
}

// NewGameState starts one stand per balance. Continued games pass the
// balances the players carried over.
func NewGameState(assets []decimal.Decimal) *GameState {
	g := &GameState{Players: make([]*model.PlayerState, len(assets))}
	for i, a := range assets {
		g.Players[i] = &model.PlayerState{Stand: i + 1, Assets: a}
	}
	return g
}

// SinglePlayerOver reports whether a one-stand game has ended.
func (g *GameState) SinglePlayerOver() bool {
	return len(g.Players) == 1 && g.Players[0].Bankrupt
}

// AllBankrupt reports whether no stand is left in business.
func (g *GameState) AllBankrupt() bool {
	for _, p := range g.Players {
		if !p.Bankrupt {
			return false
		}
	}
	return true
}

// LemonadeCostCents is the cost of one glass on a day.
func LemonadeCostCents(day int) int {
	switch {
	case day > 6:
		return 5
	case day > 2:
		return 4
	default:
		return 2
	}
}

func costNotices(day int) []string {
	switch day {
	case 3:
		return []string{NoticeSugarEnds}
	case 7:
		return []string{NoticeMixPrice}
	default:
		return nil
	}
}
