package demand

import "math"

// Demand model constants. They are fixed by the game's economy.
const (
	ReferencePrice   = 10  // cents; above it demand falls off quadratically
	BaseCustomers    = 30  // glasses wanted at the reference price
	SignDecay        = 0.5 // how quickly extra signs stop helping
	AdMultiplier     = 1.0
	underpriceFactor = 0.8
)

// BaseDemand is the number of glasses wanted at a price before advertising
// and weather are applied.
func BaseDemand(priceCents int) float64 {
	p := float64(priceCents)
	if priceCents >= ReferencePrice {
		return ReferencePrice * ReferencePrice * BaseCustomers / (p * p)
	}
	return (ReferencePrice-p)/ReferencePrice*underpriceFactor*BaseCustomers + BaseCustomers
}

// AdvertisingBoost is the fraction of extra demand signs bring in. It is 0
// with no signs and approaches AdMultiplier as signs grow.
func AdvertisingBoost(signs int) float64 {
	if signs <= 0 {
		return 0
	}
	return 1 - math.Exp(-float64(signs)*SignDecay)*AdMultiplier
}
