package model

// Weather is the category shown on the morning weather report.
type Weather string

const (
	WeatherSunny        Weather = "SUNNY"
	WeatherCloudy       Weather = "CLOUDY"
	WeatherHotDry       Weather = "HOT_DRY"
	WeatherThunderstorm Weather = "THUNDERSTORM"
)

// WeatherReport is the result of a morning draw.
type WeatherReport struct {
	Category          Weather
	ForcedByEarlyGame bool // days 1-2 are always sunny
}

// EventKind names the scripted event resolved for a day, if any.
type EventKind string

const (
	EventNone       EventKind = ""
	EventRain       EventKind = "RAIN"
	EventHeatWave   EventKind = "HEAT_WAVE"
	EventStreetWork EventKind = "STREET_WORK"
)

// EventFlags records which once-per-game events have already happened.
type EventFlags struct {
	RainOccurred       bool `json:"rain_occurred"`
	HeatWaveOccurred   bool `json:"heat_wave_occurred"`
	StreetWorkOccurred bool `json:"street_work_occurred"`
}
