package engine

import (
	"errors"
	"fmt"

	"lemonade-stand/internal/demand"
	"lemonade-stand/internal/ledger"
	"lemonade-stand/internal/model"
	"lemonade-stand/internal/weather"

	"github.com/charmbracelet/log"
)

var (
	// ErrInvalidDecision means a decision arrived for a stand that cannot
	// decide: bankrupt, unknown, or no day in progress.
	ErrInvalidDecision = errors.New("invalid decision")
	// ErrIncompleteDecisions means a day was resolved before every active
	// stand decided.
	ErrIncompleteDecisions = errors.New("incomplete decisions")
)

// Orchestrator sequences one day at a time. It is not safe for concurrent use.
type Orchestrator struct {
	game    *GameState
	weather *weather.Generator

	day       *model.DayContext
	players   []*model.PlayerState
	decisions map[int]model.PlayerDecision
}

// NewOrchestrator binds the game's event flags to a weather generator.
func NewOrchestrator(game *GameState, gen *weather.Generator) *Orchestrator {
	return &Orchestrator{game: game, weather: gen}
}

// Day returns the day in progress, or nil between days.
func (o *Orchestrator) Day() *model.DayContext {
	return o.day
}

// BeginDay draws the weather, announces the lemonade cost and resolves the
// day's event. Decisions may be recorded once it returns.
func (o *Orchestrator) BeginDay(dayNumber int, players []*model.PlayerState) (*model.DayContext, error) {
	if dayNumber < 1 {
		return nil, fmt.Errorf("begin day %d: day numbers start at 1", dayNumber)
	}

	report := o.weather.Draw(dayNumber)
	day := &model.DayContext{
		DayNumber:         dayNumber,
		LemonadeCostCents: LemonadeCostCents(dayNumber),
		Weather:           report.Category,
		ForcedByEarlyGame: report.ForcedByEarlyGame,
		Notices:           costNotices(dayNumber),
	}
	o.weather.ResolveEvents(day, &o.game.Events)

	o.day = day
	o.players = players
	o.decisions = make(map[int]model.PlayerDecision, len(players))

	log.Debug("day begun", "day", dayNumber, "weather", day.Weather,
		"cost_cents", day.LemonadeCostCents, "event", day.Event)
	return day, nil
}

// Pending lists the indexes of active stands that have not decided yet.
func (o *Orchestrator) Pending() []int {
	if o.day == nil {
		return nil
	}
	var out []int
	for i, p := range o.players {
		if p.Bankrupt {
			continue
		}
		if _, ok := o.decisions[i]; !ok {
			out = append(out, i)
		}
	}
	return out
}

// RecordDecision stores the decision of the stand at playerIndex (0-based).
// Recording again for the same stand replaces the earlier decision.
func (o *Orchestrator) RecordDecision(playerIndex int, d model.PlayerDecision) error {
	if o.day == nil {
		return fmt.Errorf("%w: no day in progress", ErrInvalidDecision)
	}
	if playerIndex < 0 || playerIndex >= len(o.players) {
		return fmt.Errorf("%w: no stand at index %d", ErrInvalidDecision, playerIndex)
	}
	p := o.players[playerIndex]
	if p.Bankrupt {
		return fmt.Errorf("%w: stand %d is bankrupt", ErrInvalidDecision, p.Stand)
	}
	if d.GlassesToMake < 0 || d.SignsToMake < 0 || d.PriceCents < 0 {
		return fmt.Errorf("%w: stand %d sent negative quantities", ErrInvalidDecision, p.Stand)
	}
	o.decisions[playerIndex] = d
	return nil
}

// ResolveDay runs the thunderstorm check and settles every stand in order.
// The day is closed afterwards; day-only events do not carry over.
func (o *Orchestrator) ResolveDay() (*model.DayResult, error) {
	if o.day == nil {
		return nil, fmt.Errorf("%w: no day in progress", ErrIncompleteDecisions)
	}
	if missing := o.Pending(); len(missing) > 0 {
		stands := make([]int, len(missing))
		for i, idx := range missing {
			stands[i] = o.players[idx].Stand
		}
		return nil, fmt.Errorf("%w: stands %v have not decided", ErrIncompleteDecisions, stands)
	}

	day := o.day
	if o.weather.Thunderstorm(day.Weather) {
		day.Thunderstorm = true
		day.Weather = model.WeatherThunderstorm
		log.Info("thunderstorm wiped out the stands", "day", day.DayNumber)
	}

	result := &model.DayResult{Outcomes: make([]model.DailyOutcome, 0, len(o.players))}
	for i, p := range o.players {
		d := o.decisions[i]
		sold := 0
		if !p.Bankrupt {
			sold = glassesSold(day, d)
		}
		result.Outcomes = append(result.Outcomes, ledger.Settle(p, d, sold, day.LemonadeCostCents))
	}
	result.Day = *day
	result.GameOver = len(o.players) == 1 && o.players[0].Bankrupt

	log.Debug("day resolved", "day", day.DayNumber, "stands", len(result.Outcomes), "game_over", result.GameOver)

	o.day = nil
	o.players = nil
	o.decisions = nil
	return result, nil
}

// glassesSold applies the day's overriding events before the demand model.
func glassesSold(day *model.DayContext, d model.PlayerDecision) int {
	switch {
	case day.StreetCrewBuysAll:
		return d.GlassesToMake
	case day.Thunderstorm:
		return 0
	default:
		return demand.GlassesSold(d, day.SalesMultiplier)
	}
}
