package types

// AQIScale maps the provider's 1-5 air quality index onto the range the risk
// model was trained on.
const AQIScale = 50

// Placeholder values used when a caller supplies weather manually. They are
// not measurements.
const (
	ManualTempMinOffset = 5.0
	ManualRainfall      = 0.0
	ManualCloudCover    = 40.0
	ManualAQI           = 100.0
)

// WeatherSample is the normalized weather reading for one city on one request
type WeatherSample struct {
	TempMax    float64 `json:"temp_max"`
	TempMin    float64 `json:"temp_min"`
	Humidity   float64 `json:"humidity"`
	WindSpeed  float64 `json:"wind_speed"` // km/h
	Pressure   float64 `json:"pressure"`   // hPa
	Rainfall   float64 `json:"rainfall"`   // mm, last hour
	CloudCover float64 `json:"cloud_cover"`
	AQI        float64 `json:"aqi"`
}

// NewManualSample synthesizes a sample from caller supplied values. Fields the
// caller cannot supply are filled with fixed placeholders.
func NewManualSample(temp, humidity, wind, pressure float64) WeatherSample {
	return WeatherSample{
		TempMax:    temp,
		TempMin:    temp - ManualTempMinOffset,
		Humidity:   humidity,
		WindSpeed:  wind,
		Pressure:   pressure,
		Rainfall:   ManualRainfall,
		CloudCover: ManualCloudCover,
		AQI:        ManualAQI,
	}
}
