// Package demand turns a stand's price, signs and the day's weather into
// glasses sold.
package demand

import "lemonade-stand/internal/model"

// Estimate breaks a sales figure into its factors.
type Estimate struct {
	Base   float64 // demand from price alone
	Boost  float64 // advertising boost in [0, 1)
	Demand int     // weather-adjusted demand, truncated
	Sold   int     // demand capped by glasses made
}

// Evaluate computes the full estimate for a decision under a weather
// multiplier. It is deterministic.
func Evaluate(d model.PlayerDecision, weatherMultiplier float64) Estimate {
	base := BaseDemand(d.PriceCents)
	boost := AdvertisingBoost(d.SignsToMake)

	wanted := int(weatherMultiplier * (base + base*boost))
	if wanted < 0 {
		wanted = 0
	}

	sold := wanted
	if sold > d.GlassesToMake {
		sold = d.GlassesToMake
	}
	if sold < 0 {
		sold = 0
	}

	return Estimate{Base: base, Boost: boost, Demand: wanted, Sold: sold}
}

// GlassesSold is the number of glasses a stand sells on an ordinary day.
func GlassesSold(d model.PlayerDecision, weatherMultiplier float64) int {
	return Evaluate(d, weatherMultiplier).Sold
}
