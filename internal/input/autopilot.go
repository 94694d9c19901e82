package input

import (
	"context"

	"lemonade-stand/internal/ledger"
	"lemonade-stand/internal/model"
	"lemonade-stand/internal/money"

	"github.com/shopspring/decimal"
)

// Autopilot plays every stand with a fixed plan, scaled down to what the
// stand can afford.
type Autopilot struct {
	Glasses    int
	Signs      int
	PriceCents int
}

func (a *Autopilot) Name() string { return "autopilot" }

func (a *Autopilot) Continue(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Decide makes as many of the planned glasses as the stand can pay for,
// then as many of the planned signs as the remainder covers.
func (a *Autopilot) Decide(ctx context.Context, day *model.DayContext, p *model.PlayerState) (model.PlayerDecision, error) {
	if err := ctx.Err(); err != nil {
		return model.PlayerDecision{}, err
	}

	cost := money.FromCents(day.LemonadeCostCents)
	glasses := a.Glasses
	if cost.IsPositive() {
		glasses = min(glasses, int(p.Assets.Div(cost).IntPart()))
	}
	remaining := p.Assets.Sub(cost.Mul(decimal.NewFromInt(int64(glasses))))
	signs := min(a.Signs, int(remaining.Div(ledger.SignCost).IntPart()))

	return model.PlayerDecision{
		GlassesToMake: max(glasses, 0),
		SignsToMake:   max(signs, 0),
		PriceCents:    a.PriceCents,
	}, nil
}
