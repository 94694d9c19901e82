// Package weather draws the morning forecast and resolves the scripted
// once-per-game events that bend the day's demand.
package weather

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"lemonade-stand/internal/model"

	"github.com/charmbracelet/log"
)

// Event odds and the earliest day events may fire.
const (
	sunnyBelow           = 0.6
	cloudyBelow          = 0.8
	streetWorkChance     = 0.25
	streetCrewChance     = 0.5
	thunderstormOdds     = 0.25
	firstEventDay        = 3
	heatWaveMultiplier   = 2.0
	streetWorkMultiplier = 0.1
)

// Rand is the uniform source in [0, 1) the generator consumes.
type Rand interface {
	Float64() float64
}

// Generator owns the random source for weather and events.
type Generator struct {
	rng Rand
}

// NewGenerator wraps an existing source. Tests pass scripted sources here.
func NewGenerator(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a generator whose draws repeat for a given seed.
func NewSeededGenerator(seed int64) *Generator {
	// #nosec G404 -- deterministic simulation, not security sensitive.
	return NewGenerator(rand.New(rand.NewPCG(seedWord(seed, "weather"), seedWord(seed, "events"))))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Draw picks the category for a day. Days before the first event day are
// always sunny, but the draw is still consumed so sequences stay aligned.
func (g *Generator) Draw(day int) model.WeatherReport {
	r := g.rng.Float64()
	if day < firstEventDay {
		return model.WeatherReport{Category: model.WeatherSunny, ForcedByEarlyGame: true}
	}
	return model.WeatherReport{Category: categoryFor(r)}
}

func categoryFor(r float64) model.Weather {
	switch {
	case r < sunnyBelow:
		return model.WeatherSunny
	case r < cloudyBelow:
		return model.WeatherCloudy
	default:
		return model.WeatherHotDry
	}
}

// ResolveEvents sets the day's sales multiplier and event, marking the
// once-per-game flags it consumes. The category decides which event may
// fire: clouds bring rain, heat brings the heat wave and only a sunny day
// can bring the street department.
func (g *Generator) ResolveEvents(day *model.DayContext, flags *model.EventFlags) {
	day.SalesMultiplier = 1
	day.Event = model.EventNone
	day.RainChancePct = 0
	day.StreetCrewBuysAll = false

	if day.DayNumber < firstEventDay {
		return
	}

	switch day.Weather {
	case model.WeatherCloudy:
		if flags.RainOccurred {
			return
		}
		pct := 30 + int(g.rng.Float64()*5)*10
		day.SalesMultiplier = 1 - float64(pct)/100
		day.RainChancePct = pct
		day.Event = model.EventRain
		flags.RainOccurred = true
	case model.WeatherHotDry:
		if flags.HeatWaveOccurred {
			return
		}
		day.SalesMultiplier = heatWaveMultiplier
		day.Event = model.EventHeatWave
		flags.HeatWaveOccurred = true
	default:
		if g.rng.Float64() >= streetWorkChance || flags.StreetWorkOccurred {
			return
		}
		day.Event = model.EventStreetWork
		flags.StreetWorkOccurred = true
		if g.rng.Float64() < streetCrewChance {
			day.StreetCrewBuysAll = true
		} else {
			day.SalesMultiplier = streetWorkMultiplier
		}
	}

	log.Info("event resolved", "day", day.DayNumber, "event", day.Event,
		"multiplier", day.SalesMultiplier, "street_crew", day.StreetCrewBuysAll)
}

// Thunderstorm rolls the once-a-day wipeout check. Only cloudy days can
// turn into a storm.
func (g *Generator) Thunderstorm(category model.Weather) bool {
	if category != model.WeatherCloudy {
		return false
	}
	return g.rng.Float64() < thunderstormOdds
}
