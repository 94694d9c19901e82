package model

import "github.com/shopspring/decimal"

// DayContext holds everything decided about a day before settlement.
type DayContext struct {
	DayNumber         int
	LemonadeCostCents int
	Weather           Weather
	ForcedByEarlyGame bool
	SalesMultiplier   float64 // applied to demand for every stand
	Event             EventKind
	RainChancePct     int      // set only with EventRain
	Notices           []string // cost announcements for day 3 and day 7

	// Day-only outcomes. They never carry into the next day.
	StreetCrewBuysAll bool
	Thunderstorm      bool
}

// DailyOutcome is one stand's result for one day.
type DailyOutcome struct {
	Stand         int
	Skipped       bool // bankrupt before the day started
	GlassesMade   int
	SignsMade     int
	PriceCents    int
	GlassesSold   int
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	Profit        decimal.Decimal
	NewAssets     decimal.Decimal
	NewlyBankrupt bool
}

// DayResult is returned by the orchestrator once a day is resolved.
type DayResult struct {
	Day      DayContext
	Outcomes []DailyOutcome
	GameOver bool // single-player game whose stand went bankrupt
}
