package sample

var weatherPoints = [...]WeatherPoint{
	{Label: "Mon", TemperatureC: 32, HumidityPct: 65, SoilPct: 45},
	{Label: "Tue", TemperatureC: 30, HumidityPct: 68, SoilPct: 42},
	{Label: "Wed", TemperatureC: 31, HumidityPct: 70, SoilPct: 44},
	{Label: "Thu", TemperatureC: 33, HumidityPct: 62, SoilPct: 40},
	{Label: "Fri", TemperatureC: 35, HumidityPct: 58, SoilPct: 38},
}

var cropScores = [...]CropScore{
	{Name: "Cotton", Score: 92, Demand: TierHigh, WaterReq: TierMedium, Season: SeasonCurrent},
	{Name: "Soybean", Score: 85, Demand: TierMedium, WaterReq: TierLow, Season: SeasonCurrent},
	{Name: "Sugarcane", Score: 78, Demand: TierMedium, WaterReq: TierHigh, Season: SeasonOff},
}

var alerts = [...]AlertRecord{
	{ID: 1, Category: AlertWeather, Title: "High Temperature Alert", Description: "Temperature expected to reach 38°C tomorrow"},
	{ID: 2, Category: AlertMarket, Title: "Price Alert", Description: "Cotton prices trending upward in nearby markets"},
	{ID: 3, Category: AlertPest, Title: "Pest Warning", Description: "Increased pest activity reported in the region"},
}

var analysisSteps = [...]AnalysisStep{
	{ID: 0, Label: "Connecting to IoT Devices...", Icon: "wifi"},
	{ID: 1, Label: "Reading Sensor Data...", Icon: "database"},
	{ID: 2, Label: "Analyzing Historical Data...", Icon: "bar-chart"},
	{ID: 3, Label: "Running AI Models...", Icon: "brain"},
}

var dashboardReadings = [...]Reading{
	{Label: "Temperature", Value: "32°C", Icon: "thermometer"},
	{Label: "Soil Moisture", Value: "45%", Icon: "droplets"},
	{Label: "Wind Speed", Value: "12 km/h", Icon: "wind"},
}

var farmerConditions = [...]Reading{
	{Label: "Soil Moisture", Value: "75%", Icon: "droplets"},
	{Label: "Temperature", Value: "28°C", Icon: "wind"},
}

var farmerRecommendations = [...]string{
	"Best time to irrigate: Early morning tomorrow",
	"Wheat market price trending up - Consider selling",
}

var marketPrices = [...]MarketPrice{
	{Commodity: "Wheat", Price: "₹2,100/quintal", Trending: true},
	{Commodity: "Rice", Price: "₹1,900/quintal"},
}

const (
	// WeatherAdvisory is the weather panel's advisory card text.
	WeatherAdvisory = "Clear skies expected. Ideal conditions for crop maintenance activities."

	// RecommendationRationale closes every expanded crop detail.
	RecommendationRationale = "Recommended due to optimal soil conditions and expected market demand in the next season."

	// FarmerBanner is the farmer screen's alert banner.
	FarmerBanner = "Rain expected tomorrow. Consider delaying fertilizer application."
)

var todayOverview = Overview{MaxTempC: 35, MinTempC: 24, HumidityPct: 65, WindKmh: 12}

// TodayOverview returns the weather panel's summary for the current day.
func TodayOverview() Overview { return todayOverview }

// WeatherPoints returns the five-day trend, Monday first.
func WeatherPoints() []WeatherPoint {
	out := make([]WeatherPoint, len(weatherPoints))
	copy(out, weatherPoints[:])
	return out
}

// CropScores returns the recommendation table in display order.
func CropScores() []CropScore {
	out := make([]CropScore, len(cropScores))
	copy(out, cropScores[:])
	return out
}

// CropCount is the number of recommendation entries.
func CropCount() int { return len(cropScores) }

// Crop returns the entry at i.
func Crop(i int) (CropScore, bool) {
	if i < 0 || i >= len(cropScores) {
		return CropScore{}, false
	}
	return cropScores[i], true
}

// Alerts returns the static alerts ordered by ID.
func Alerts() []AlertRecord {
	out := make([]AlertRecord, len(alerts))
	copy(out, alerts[:])
	return out
}

// AnalysisSteps returns the four wizard stages in order.
func AnalysisSteps() []AnalysisStep {
	out := make([]AnalysisStep, len(analysisSteps))
	copy(out, analysisSteps[:])
	return out
}

// StepCount is the number of wizard stages.
func StepCount() int { return len(analysisSteps) }

// DashboardReadings returns the three headline readings of the dashboard.
func DashboardReadings() []Reading {
	out := make([]Reading, len(dashboardReadings))
	copy(out, dashboardReadings[:])
	return out
}

// FarmerConditions returns the "Current Conditions" readings of the farmer screen.
func FarmerConditions() []Reading {
	out := make([]Reading, len(farmerConditions))
	copy(out, farmerConditions[:])
	return out
}

// FarmerRecommendations returns the farmer screen's bullet list.
func FarmerRecommendations() []string {
	out := make([]string, len(farmerRecommendations))
	copy(out, farmerRecommendations[:])
	return out
}

// MarketPrices returns the commodity prices of the farmer screen.
func MarketPrices() []MarketPrice {
	out := make([]MarketPrice, len(marketPrices))
	copy(out, marketPrices[:])
	return out
}
