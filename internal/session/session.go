// Package session drives whole games: the day loop, history recording and
// the interactive setup around it.
package session

import (
	"context"
	"errors"

	"lemonade-stand/internal/engine"
	"lemonade-stand/internal/input"
	"lemonade-stand/internal/model"
	"lemonade-stand/internal/recorder"
	"lemonade-stand/internal/report"
	"lemonade-stand/internal/weather"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Session plays one game from its first day until it ends.
type Session struct {
	Game  *engine.GameState
	RunID string

	orch    *engine.Orchestrator
	source  input.DecisionSource
	out     report.Notifier
	rec     recorder.Recorder
	nextDay int
}

// New prepares a game whose first day is firstDay. Continued games start
// after the day the players remembered.
func New(game *engine.GameState, gen *weather.Generator, src input.DecisionSource,
	out report.Notifier, rec recorder.Recorder, firstDay int) *Session {
	if firstDay < 1 {
		firstDay = 1
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Session{
		Game:    game,
		RunID:   uuid.NewString(),
		orch:    engine.NewOrchestrator(game, gen),
		source:  src,
		out:     out,
		rec:     rec,
		nextDay: firstDay,
	}
}

// NextDay is the number of the day PlayDay will play.
func (s *Session) NextDay() int { return s.nextDay }

// Over reports whether no stand has anything left to decide.
func (s *Session) Over() bool {
	return s.Game.SinglePlayerOver() || s.Game.AllBankrupt()
}

// PlayDay runs one full day: forecast, decisions of every active stand,
// settlement, report and recording.
func (s *Session) PlayDay(ctx context.Context) (*model.DayResult, error) {
	day, err := s.orch.BeginDay(s.nextDay, s.Game.Players)
	if err != nil {
		return nil, err
	}
	s.send(report.FormatWeatherReport(day.Weather) + "\n" + report.FormatDayBanner(day))

	for i, p := range s.Game.Players {
		s.send(report.FormatStandAssets(p))
		if p.Bankrupt {
			continue
		}
		d, err := s.source.Decide(ctx, day, p)
		if err != nil {
			return nil, err
		}
		if err := s.orch.RecordDecision(i, d); err != nil {
			return nil, err
		}
	}

	res, err := s.orch.ResolveDay()
	if err != nil {
		return nil, err
	}
	s.send(report.FormatDayResult(res))

	if err := s.rec.RecordDay(ctx, &recorder.DayRecord{
		RunID: s.RunID, Day: res.Day, Outcomes: res.Outcomes,
	}); err != nil {
		log.Error("record day", "day", res.Day.DayNumber, "err", err)
	}

	s.nextDay++
	return res, nil
}

// Run plays days until the game is over or the players stop, then shows
// the standings. Quitting from a prompt is a normal stop.
func (s *Session) Run(ctx context.Context) error {
	log.Info("game started", "run_id", s.RunID, "stands", len(s.Game.Players),
		"first_day", s.nextDay, "source", s.source.Name())

	err := s.loop(ctx)
	if errors.Is(err, input.ErrQuit) {
		err = nil
	}
	s.send(s.Standings())
	log.Info("game finished", "run_id", s.RunID, "last_day", s.nextDay-1)
	return err
}

func (s *Session) loop(ctx context.Context) error {
	for {
		res, err := s.PlayDay(ctx)
		if err != nil {
			return err
		}
		if res.GameOver || s.Over() {
			return nil
		}
		ok, err := s.source.Continue(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Standings renders the current ranking of every stand.
func (s *Session) Standings() string {
	return report.FormatStandings(s.Game.Players)
}

func (s *Session) send(text string) {
	if err := s.out.Send(text); err != nil {
		log.Error("send output", "err", err)
	}
}
