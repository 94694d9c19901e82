package engine

import (
	"testing"

	"lemonade-stand/internal/model"
	"lemonade-stand/internal/money"
	"lemonade-stand/internal/weather"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scripted struct {
	t     *testing.T
	draws []float64
}

func (s *scripted) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.draws, "random source exhausted")
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func newOrchestrator(t *testing.T, game *GameState, draws ...float64) *Orchestrator {
	return NewOrchestrator(game, weather.NewGenerator(&scripted{t: t, draws: draws}))
}

func TestLemonadeCostCents(t *testing.T) {
	tests := []struct {
		day  int
		want int
	}{
		{1, 2}, {2, 2}, {3, 4}, {6, 4}, {7, 5}, {30, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LemonadeCostCents(tt.day), "day %d", tt.day)
	}
}

func TestBeginDay_CostNotices(t *testing.T) {
	game := NewGame(1)
	o := newOrchestrator(t, game, 0.5, 0.9, 0.9)

	day, err := o.BeginDay(2, game.Players)
	require.NoError(t, err)
	assert.Empty(t, day.Notices)

	day, err = o.BeginDay(3, game.Players)
	require.NoError(t, err)
	assert.Equal(t, []string{NoticeSugarEnds}, day.Notices)
	assert.Equal(t, 4, day.LemonadeCostCents)
	assert.Equal(t, model.EventHeatWave, day.Event)

	day, err = o.BeginDay(7, game.Players)
	require.NoError(t, err)
	assert.Equal(t, []string{NoticeMixPrice}, day.Notices)
	assert.Equal(t, 5, day.LemonadeCostCents)
}

func TestBeginDay_RejectsDayZero(t *testing.T) {
	game := NewGame(1)
	_, err := newOrchestrator(t, game).BeginDay(0, game.Players)
	assert.Error(t, err)
}

func TestDayOneScenario(t *testing.T) {
	game := NewGame(1)
	o := newOrchestrator(t, game, 0.95)

	day, err := o.BeginDay(1, game.Players)
	require.NoError(t, err)
	assert.Equal(t, model.WeatherSunny, day.Weather)
	assert.True(t, day.ForcedByEarlyGame)
	assert.Equal(t, 2, day.LemonadeCostCents)

	require.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 20, SignsToMake: 0, PriceCents: 10}))
	res, err := o.ResolveDay()
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 1)

	out := res.Outcomes[0]
	assert.Equal(t, 1, out.Stand)
	assert.Equal(t, 20, out.GlassesSold)
	assert.True(t, out.Income.Equal(money.Dollars("2.00")))
	assert.True(t, out.Expenses.Equal(money.Dollars("0.40")))
	assert.True(t, out.Profit.Equal(money.Dollars("1.60")))
	assert.True(t, out.NewAssets.Equal(money.Dollars("3.60")))
	assert.False(t, res.GameOver)
	assert.Nil(t, o.Day())
}

func TestThunderstormWipesOutEveryStand(t *testing.T) {
	game := NewGame(2)
	game.Events.RainOccurred = true
	o := newOrchestrator(t, game, 0.7, 0.1)

	day, err := o.BeginDay(4, game.Players)
	require.NoError(t, err)
	assert.Equal(t, model.WeatherCloudy, day.Weather)

	require.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 10, SignsToMake: 1, PriceCents: 10}))
	require.NoError(t, o.RecordDecision(1, model.PlayerDecision{GlassesToMake: 20, SignsToMake: 0, PriceCents: 5}))
	res, err := o.ResolveDay()
	require.NoError(t, err)

	assert.True(t, res.Day.Thunderstorm)
	assert.Equal(t, model.WeatherThunderstorm, res.Day.Weather)
	for _, out := range res.Outcomes {
		assert.Zero(t, out.GlassesSold)
		assert.True(t, out.Expenses.IsPositive())
		assert.True(t, out.Profit.Equal(out.Expenses.Neg()))
	}
	assert.True(t, res.Outcomes[0].Expenses.Equal(money.Dollars("0.55")))
	assert.True(t, res.Outcomes[1].Expenses.Equal(money.Dollars("0.80")))
}

func TestStreetCrewBuysEverythingForOneDay(t *testing.T) {
	game := NewGame(2)
	// day 5: sunny, street work, crew buys all. day 6: sunny, street roll hits but already happened.
	o := newOrchestrator(t, game, 0.1, 0.1, 0.2, 0.1, 0.1)

	day, err := o.BeginDay(5, game.Players)
	require.NoError(t, err)
	assert.Equal(t, model.EventStreetWork, day.Event)
	assert.True(t, day.StreetCrewBuysAll)

	require.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 40, SignsToMake: 0, PriceCents: 100}))
	require.NoError(t, o.RecordDecision(1, model.PlayerDecision{GlassesToMake: 15, SignsToMake: 3, PriceCents: 60}))
	res, err := o.ResolveDay()
	require.NoError(t, err)
	assert.Equal(t, 40, res.Outcomes[0].GlassesSold)
	assert.Equal(t, 15, res.Outcomes[1].GlassesSold)
	assert.True(t, game.Events.StreetWorkOccurred)

	day, err = o.BeginDay(6, game.Players)
	require.NoError(t, err)
	assert.False(t, day.StreetCrewBuysAll)
	assert.Equal(t, model.EventNone, day.Event)
}

func TestRecordDecision_Errors(t *testing.T) {
	game := NewGame(2)
	game.Players[1].Bankrupt = true
	o := newOrchestrator(t, game, 0.5)

	err := o.RecordDecision(0, model.PlayerDecision{})
	assert.ErrorIs(t, err, ErrInvalidDecision, "before BeginDay")

	_, err = o.BeginDay(1, game.Players)
	require.NoError(t, err)

	assert.ErrorIs(t, o.RecordDecision(1, model.PlayerDecision{}), ErrInvalidDecision)
	assert.ErrorIs(t, o.RecordDecision(2, model.PlayerDecision{}), ErrInvalidDecision)
	assert.ErrorIs(t, o.RecordDecision(-1, model.PlayerDecision{}), ErrInvalidDecision)
	assert.ErrorIs(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: -1}), ErrInvalidDecision)
	assert.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 1}))
}

func TestResolveDay_Incomplete(t *testing.T) {
	game := NewGame(3)
	game.Players[2].Bankrupt = true
	o := newOrchestrator(t, game, 0.5)

	_, err := o.ResolveDay()
	assert.ErrorIs(t, err, ErrIncompleteDecisions)

	_, err = o.BeginDay(1, game.Players)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, o.Pending())

	require.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 5, PriceCents: 10}))
	_, err = o.ResolveDay()
	assert.ErrorIs(t, err, ErrIncompleteDecisions)
	assert.Equal(t, []int{1}, o.Pending())

	require.NoError(t, o.RecordDecision(1, model.PlayerDecision{GlassesToMake: 5, PriceCents: 10}))
	res, err := o.ResolveDay()
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 3)
	assert.True(t, res.Outcomes[2].Skipped)
	assert.False(t, res.GameOver, "multi-player games do not end on bankruptcy")
}

func TestRecordDecision_LastDecisionWins(t *testing.T) {
	game := NewGame(1)
	o := newOrchestrator(t, game, 0.5)
	_, err := o.BeginDay(1, game.Players)
	require.NoError(t, err)

	require.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 50, PriceCents: 10}))
	require.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 10, PriceCents: 10}))
	res, err := o.ResolveDay()
	require.NoError(t, err)
	assert.Equal(t, 10, res.Outcomes[0].GlassesMade)
}

func TestSinglePlayerBankruptcyEndsGame(t *testing.T) {
	game := NewGameState([]decimal.Decimal{money.Dollars("0.20")})
	o := newOrchestrator(t, game, 0.5, 0.5)

	_, err := o.BeginDay(1, game.Players)
	require.NoError(t, err)
	// one sign leaves $0.05; the next day two free glasses cost $0.04 and leave $0.01.
	require.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 0, SignsToMake: 1, PriceCents: 10}))
	res, err := o.ResolveDay()
	require.NoError(t, err)
	assert.False(t, res.Outcomes[0].NewlyBankrupt)
	assert.True(t, game.Players[0].Assets.Equal(money.Dollars("0.05")))

	_, err = o.BeginDay(2, game.Players)
	require.NoError(t, err)
	require.NoError(t, o.RecordDecision(0, model.PlayerDecision{GlassesToMake: 2, SignsToMake: 0, PriceCents: 0}))
	res, err = o.ResolveDay()
	require.NoError(t, err)
	assert.True(t, res.Outcomes[0].NewlyBankrupt)
	assert.True(t, res.GameOver)
	assert.True(t, game.SinglePlayerOver())
}

func TestBankruptStandNeverChanges(t *testing.T) {
	game := NewGame(2)
	game.Players[0].Bankrupt = true
	game.Players[0].Assets = money.Dollars("0.01")
	// day 3 is sunny and rolls (and misses) the street work event.
	o := newOrchestrator(t, game, 0.5, 0.5, 0.5, 0.5)

	for day := 1; day <= 3; day++ {
		_, err := o.BeginDay(day, game.Players)
		require.NoError(t, err)
		require.NoError(t, o.RecordDecision(1, model.PlayerDecision{GlassesToMake: 5, PriceCents: 10}))
		res, err := o.ResolveDay()
		require.NoError(t, err)
		assert.True(t, res.Outcomes[0].Skipped)
		assert.True(t, game.Players[0].Assets.Equal(money.Dollars("0.01")))
	}
	assert.False(t, game.AllBankrupt())
}
