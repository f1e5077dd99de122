package types

// RiskLevel is a human readable band for a risk score
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskExtreme  RiskLevel = "Extreme"
)

// NewRiskLevel bands a model score
func NewRiskLevel(score float64) RiskLevel {
	switch {
	case score > 0.8:
		return RiskExtreme
	case score > 0.6:
		return RiskHigh
	case score > 0.4:
		return RiskModerate
	default:
		return RiskLow
	}
}

// PredictionResult is the per-city entry of a predict_all response
type PredictionResult struct {
	City       string    `json:"city" example:"Delhi"`
	Latitude   float64   `json:"lat" example:"28.6139"`
	Longitude  float64   `json:"lon" example:"77.209"`
	Prediction float64   `json:"prediction" example:"0.72"`
	Level      RiskLevel `json:"level" example:"High"`
}

// NewPredictionResult builds a result for a city and its score
func NewPredictionResult(city City, score float64) PredictionResult {
	return PredictionResult{
		City:       city.Name,
		Latitude:   city.Coordinates.Latitude,
		Longitude:  city.Coordinates.Longitude,
		Prediction: score,
		Level:      NewRiskLevel(score),
	}
}
