// Package input collects each stand's daily decision, either from a person
// at the terminal or from the built-in autopilot.
package input

import (
	"context"
	"errors"

	"lemonade-stand/internal/model"
)

// ErrQuit is returned when the player ends the game from a prompt.
var ErrQuit = errors.New("player quit")

// DecisionSource supplies affordable decisions for active stands.
type DecisionSource interface {
	// Decide returns the decision of stand p for the day. The result never
	// spends more than p.Assets.
	Decide(ctx context.Context, day *model.DayContext, p *model.PlayerState) (model.PlayerDecision, error)
	// Continue blocks until the player chooses to go on (true) or stop (false).
	Continue(ctx context.Context) (bool, error)
	Name() string
}
