// Package sample holds the fixed sample records that drive every Krishi-Sakha
// screen. Nothing here is fetched or computed: the weather, crop scores, alerts
// and market prices are compile-time constants, and every accessor hands out a
// fresh copy so callers can never mutate the shared set.
package sample

// Tier grades a crop attribute such as market demand or water requirement.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

var tierNames = []string{"Low", "Medium", "High"}

func (t Tier) String() string {
	if int(t) >= 0 && int(t) < len(tierNames) {
		return tierNames[t]
	}
	return "Unknown"
}

// Season tags whether a crop belongs to the current growing season.
type Season int

const (
	SeasonCurrent Season = iota
	SeasonOff
)

func (s Season) String() string {
	switch s {
	case SeasonCurrent:
		return "Current"
	case SeasonOff:
		return "Off-season"
	default:
		return "Unknown"
	}
}

// AlertCategory classifies an alert record.
type AlertCategory string

const (
	AlertWeather AlertCategory = "weather"
	AlertMarket  AlertCategory = "market"
	AlertPest    AlertCategory = "pest"
)

// WeatherPoint is one day of the weekly trend.
type WeatherPoint struct {
	Label        string
	TemperatureC int
	HumidityPct  int
	SoilPct      int
}

// CropScore is one row of the crop recommendation table.
type CropScore struct {
	Name     string
	Score    int
	Demand   Tier
	WaterReq Tier
	Season   Season
}

// AlertRecord is a static alert shown on the alerts panel.
type AlertRecord struct {
	ID          int
	Category    AlertCategory
	Title       string
	Description string
}

// AnalysisStep is one stage of the simulated analysis sequence.
type AnalysisStep struct {
	ID    int
	Label string
	Icon  string // glyph reference
}

// Reading is a labelled headline value such as "Temperature 32°C".
type Reading struct {
	Label string
	Value string
	Icon  string
}

// Overview is the weather panel's "Today's Overview" card.
type Overview struct {
	MaxTempC    int
	MinTempC    int
	HumidityPct int
	WindKmh     int
}

// MarketPrice is one commodity line on the farmer screen.
type MarketPrice struct {
	Commodity string
	Price     string
	Trending  bool
}
