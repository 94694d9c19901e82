// Package report renders the morning banners and the daily financial report.
package report

import (
	"fmt"
	"sort"
	"strings"

	"lemonade-stand/internal/model"
	"lemonade-stand/internal/money"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var heading = lipgloss.NewStyle().Bold(true)

var weatherNames = map[model.Weather]string{
	model.WeatherSunny:        "SUNNY",
	model.WeatherCloudy:       "CLOUDY",
	model.WeatherHotDry:       "HOT AND DRY",
	model.WeatherThunderstorm: "THUNDERSTORMS!",
}

// FormatWeatherReport renders the morning weather report.
func FormatWeatherReport(w model.Weather) string {
	var b strings.Builder
	b.WriteString(heading.Render("LEMONSVILLE WEATHER REPORT:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", weatherNames[w]))
	return b.String()
}

// EventNarrative describes the day's scripted event before trading starts.
func EventNarrative(day *model.DayContext) string {
	switch day.Event {
	case model.EventRain:
		return fmt.Sprintf("THERE IS A %d%% CHANCE OF LIGHT RAIN,\nAND THE WEATHER IS COOLER TODAY.\n", day.RainChancePct)
	case model.EventHeatWave:
		return "A HEAT WAVE IS PREDICTED FOR TODAY!\n"
	case model.EventStreetWork:
		return "THE STREET DEPARTMENT IS WORKING TODAY.\nTHERE WILL BE NO TRAFFIC ON YOUR STREET.\n"
	default:
		return ""
	}
}

// FormatDayBanner renders the cost announcement and the day's news.
func FormatDayBanner(day *model.DayContext) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("ON DAY %d, THE COST OF LEMONADE IS %s\n\n", day.DayNumber, money.FormatCost(day.LemonadeCostCents)))
	for _, n := range day.Notices {
		b.WriteString(fmt.Sprintf("(%s)\n", n))
	}
	b.WriteString(EventNarrative(day))
	return b.String()
}

// FormatStandAssets is shown before a stand decides.
func FormatStandAssets(p *model.PlayerState) string {
	s := fmt.Sprintf("LEMONADE STAND %d ASSETS: %s\n", p.Stand, money.Format(p.Assets))
	if p.Bankrupt {
		s += "YOU ARE BANKRUPT, NO DECISIONS\nFOR YOU TO MAKE.\n"
	}
	return s
}

// FormatThunderstorm explains a wiped-out day.
func FormatThunderstorm() string {
	return FormatWeatherReport(model.WeatherThunderstorm) +
		"WEATHER REPORT: A SEVERE THUNDERSTORM\n" +
		"HIT LEMONSVILLE EARLIER TODAY, JUST AS\n" +
		"THE LEMONADE STANDS WERE BEING SET UP.\n" +
		"UNFORTUNATELY, EVERYTHING WAS RUINED!!\n"
}

// FormatDailyReport renders one stand's financial report.
func FormatDailyReport(day int, out model.DailyOutcome) string {
	if out.Skipped {
		return fmt.Sprintf("STAND %d BANKRUPT\n", out.Stand)
	}

	var b strings.Builder
	b.WriteString(heading.Render(fmt.Sprintf("DAY %d  STAND %d", day, out.Stand)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%d GLASSES SOLD\n", out.GlassesSold))
	b.WriteString(fmt.Sprintf("%s PER GLASS, INCOME %s\n", money.Format(money.FromCents(out.PriceCents)), money.Format(out.Income)))
	b.WriteString(fmt.Sprintf("%d GLASSES MADE\n", out.GlassesMade))
	b.WriteString(fmt.Sprintf("%d SIGNS MADE, EXPENSES %s\n\n", out.SignsMade, money.Format(out.Expenses)))
	b.WriteString(fmt.Sprintf("PROFIT: %s\n", money.Format(out.Profit)))
	b.WriteString(fmt.Sprintf("ASSETS: %s\n", money.Format(out.NewAssets)))
	if out.NewlyBankrupt {
		b.WriteString(fmt.Sprintf("\nSTAND %d\n ...YOU DON'T HAVE ENOUGH MONEY LEFT\n TO STAY IN BUSINESS YOU'RE BANKRUPT!\n", out.Stand))
	}
	return b.String()
}

// FormatDayResult renders everything that happened once trading closed:
// storm or street crew news, then one report per stand in stand order.
func FormatDayResult(res *model.DayResult) string {
	var b strings.Builder
	if res.Day.Thunderstorm {
		b.WriteString(FormatThunderstorm())
		b.WriteString("\n")
	}
	if res.Day.StreetCrewBuysAll {
		b.WriteString("THE STREET CREWS BOUGHT ALL YOUR\nLEMONADE AT LUNCHTIME!!\n")
	}
	b.WriteString(heading.Render("** LEMONSVILLE DAILY FINANCIAL REPORT **"))
	b.WriteString("\n")
	for _, out := range res.Outcomes {
		b.WriteString("\n")
		b.WriteString(FormatDailyReport(res.Day.DayNumber, out))
	}
	return b.String()
}

// FormatStandings ranks stands by assets, richest first. Ties keep stand order.
func FormatStandings(players []*model.PlayerState) string {
	ranked := make([]*model.PlayerState, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Assets.GreaterThan(ranked[j].Assets)
	})

	var b strings.Builder
	b.WriteString(heading.Render("FINAL STANDINGS"))
	b.WriteString("\n")
	for i, p := range ranked {
		status := ""
		if p.Bankrupt {
			status = " (BANKRUPT)"
		}
		b.WriteString(fmt.Sprintf("%-5s STAND %d  %s%s\n", strings.ToUpper(humanize.Ordinal(i+1)), p.Stand, money.Format(p.Assets), status))
	}
	return b.String()
}
