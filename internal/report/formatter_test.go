package report

import (
	"bytes"
	"strings"
	"testing"

	"lemonade-stand/internal/model"
	"lemonade-stand/internal/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWeatherReport(t *testing.T) {
	assert.Contains(t, FormatWeatherReport(model.WeatherHotDry), "HOT AND DRY")
	assert.Contains(t, FormatWeatherReport(model.WeatherThunderstorm), "THUNDERSTORMS!")
}

func TestFormatDayBanner(t *testing.T) {
	day := &model.DayContext{DayNumber: 3, LemonadeCostCents: 4, Event: model.EventRain, RainChancePct: 40,
		Notices: []string{"YOUR MOTHER QUIT GIVING YOU FREE SUGAR"}}
	s := FormatDayBanner(day)
	assert.Contains(t, s, "ON DAY 3, THE COST OF LEMONADE IS $.04")
	assert.Contains(t, s, "(YOUR MOTHER QUIT GIVING YOU FREE SUGAR)")
	assert.Contains(t, s, "40% CHANCE OF LIGHT RAIN")
}

func TestEventNarrative(t *testing.T) {
	assert.Empty(t, EventNarrative(&model.DayContext{}))
	assert.Contains(t, EventNarrative(&model.DayContext{Event: model.EventHeatWave}), "HEAT WAVE")
	assert.Contains(t, EventNarrative(&model.DayContext{Event: model.EventStreetWork}), "NO TRAFFIC")
}

func TestFormatDailyReport(t *testing.T) {
	out := model.DailyOutcome{
		Stand: 1, GlassesMade: 20, GlassesSold: 20, PriceCents: 10,
		Income: money.Dollars("2"), Expenses: money.Dollars("0.4"),
		Profit: money.Dollars("1.6"), NewAssets: money.Dollars("3.6"),
	}
	s := FormatDailyReport(1, out)
	assert.Contains(t, s, "DAY 1  STAND 1")
	assert.Contains(t, s, "20 GLASSES SOLD")
	assert.Contains(t, s, "$0.10 PER GLASS, INCOME $2.00")
	assert.Contains(t, s, "0 SIGNS MADE, EXPENSES $0.40")
	assert.Contains(t, s, "PROFIT: $1.60")
	assert.Contains(t, s, "ASSETS: $3.60")
	assert.NotContains(t, s, "BANKRUPT")

	out.NewlyBankrupt = true
	assert.Contains(t, FormatDailyReport(1, out), "YOU'RE BANKRUPT!")

	assert.Equal(t, "STAND 2 BANKRUPT\n", FormatDailyReport(4, model.DailyOutcome{Stand: 2, Skipped: true}))
}

func TestFormatDayResult_Events(t *testing.T) {
	res := &model.DayResult{
		Day:      model.DayContext{DayNumber: 5, Thunderstorm: true},
		Outcomes: []model.DailyOutcome{{Stand: 1}, {Stand: 2, Skipped: true}},
	}
	s := FormatDayResult(res)
	assert.Contains(t, s, "EVERYTHING WAS RUINED")
	assert.Contains(t, s, "DAILY FINANCIAL REPORT")
	assert.Less(t, strings.Index(s, "DAY 5  STAND 1"), strings.Index(s, "STAND 2 BANKRUPT"))

	res.Day = model.DayContext{DayNumber: 6, StreetCrewBuysAll: true}
	assert.Contains(t, FormatDayResult(res), "STREET CREWS BOUGHT ALL")
}

func TestFormatStandings(t *testing.T) {
	players := []*model.PlayerState{
		{Stand: 1, Assets: money.Dollars("3.10")},
		{Stand: 2, Assets: money.Dollars("7.25")},
		{Stand: 3, Assets: money.Dollars("0.01"), Bankrupt: true},
	}
	s := FormatStandings(players)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "1ST")
	assert.Contains(t, lines[1], "STAND 2")
	assert.Contains(t, lines[2], "STAND 1")
	assert.Contains(t, lines[3], "3RD")
	assert.Contains(t, lines[3], "(BANKRUPT)")
	assert.Equal(t, 1, players[0].Stand, "input order untouched")
}

func TestConsoleNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)
	require.NoError(t, n.Send("hello"))
	require.NoError(t, n.Send(""))
	require.NoError(t, n.Send("world\n"))
	assert.Equal(t, "hello\nworld\n", buf.String())
}
