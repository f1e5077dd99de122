package risk

import "heat-risk/internal/types"

// BuildFeatures assembles the model input for one city. The humidity
// rolling column carries the current humidity; no humidity history is kept.
func BuildFeatures(sample types.WeatherSample, cal types.Calendar, avg3, avg7 float64) types.FeatureVector {
	return types.FeatureVector{
		TempMax:      sample.TempMax,
		TempMin:      sample.TempMin,
		Rainfall:     sample.Rainfall,
		WindSpeed:    sample.WindSpeed,
		AQI:          sample.AQI,
		Pressure:     sample.Pressure,
		CloudCover:   sample.CloudCover,
		Day:          cal.Day,
		Month:        cal.Month,
		DayOfWeek:    cal.DayOfWeek,
		TempAvg3Day:  avg3,
		TempAvg7Day:  avg7,
		Humidity3Day: sample.Humidity,
	}
}
