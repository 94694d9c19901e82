// Package scheduler plays a game on a cron schedule, one day per tick.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"lemonade-stand/internal/report"
	"lemonade-stand/internal/session"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// Scheduler ticks a session forward until the game ends or the day limit
// is reached.
type Scheduler struct {
	Cron    *cron.Cron
	Session *session.Session
	Out     report.Notifier
	MaxDays int
	Ctx     context.Context

	mu       sync.Mutex
	played   int
	finished bool
	done     chan struct{}
}

// NewScheduler registers the autoplay task under spec. A maxDays of zero
// plays until the game ends.
func NewScheduler(ctx context.Context, sess *session.Session, out report.Notifier, spec string, maxDays int) (*Scheduler, error) {
	s := &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Session: sess,
		Out:     out,
		MaxDays: maxDays,
		Ctx:     ctx,
		done:    make(chan struct{}),
	}
	if _, err := s.Cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("register autoplay task: %w", err)
	}
	return s, nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started", "run_id", s.Session.RunID, "max_days", s.MaxDays)
}

// Stop stops the cron scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info("scheduler stopped", "days_played", s.Played())
}

// Done is closed once the game has ended.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Played is the number of days played so far.
func (s *Scheduler) Played() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.played
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return
	}

	res, err := s.Session.PlayDay(s.Ctx)
	if err != nil {
		log.Error("autoplay day", "day", s.Session.NextDay(), "err", err)
		s.finish()
		return
	}
	s.played++

	switch {
	case res.GameOver || s.Session.Over():
		log.Info("autoplay game over", "day", res.Day.DayNumber)
	case s.MaxDays > 0 && s.played >= s.MaxDays:
		log.Info("autoplay day limit reached", "days", s.played)
	default:
		return
	}
	s.finish()
}

func (s *Scheduler) finish() {
	s.finished = true
	if err := s.Out.Send(s.Session.Standings()); err != nil {
		log.Error("send standings", "err", err)
	}
	close(s.done)
}
