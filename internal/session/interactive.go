package session

import (
	"context"
	"errors"

	"lemonade-stand/internal/engine"
	"lemonade-stand/internal/input"
	"lemonade-stand/internal/recorder"
	"lemonade-stand/internal/report"
	"lemonade-stand/internal/weather"
)

// Interactive runs the console program: title page, new or continued game,
// the game itself and the offer to play again. presetPlayers skips the
// player count question when positive.
func Interactive(ctx context.Context, c *input.Console, out report.Notifier, rec recorder.Recorder,
	gen *weather.Generator, presetPlayers int) error {
	err := interactive(ctx, c, out, rec, gen, presetPlayers)
	if errors.Is(err, input.ErrQuit) {
		return nil
	}
	return err
}

func interactive(ctx context.Context, c *input.Console, out report.Notifier, rec recorder.Recorder,
	gen *weather.Generator, presetPlayers int) error {
	for {
		newGame, players, err := c.Title(ctx, presetPlayers)
		if err != nil {
			return err
		}

		var game *engine.GameState
		firstDay := 1
		if newGame {
			ok, err := c.Instructions(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			game = engine.NewGame(players)
		} else {
			carry, err := c.ContinuedGame(ctx, players)
			if err != nil {
				return err
			}
			game = engine.NewGameState(carry.Assets)
			firstDay = carry.LastDay + 1
		}

		if err := New(game, gen, c, out, rec, firstDay).Run(ctx); err != nil {
			return err
		}

		again, err := c.PlayAgain(ctx)
		if err != nil || !again {
			return err
		}
	}
}
