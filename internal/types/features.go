package types

import "time"

// Feature column names, in the order the risk model was trained on.
// Renaming or reordering these breaks the model contract.
const (
	ColumnTempMax        = "Temperature_Max (°C)"
	ColumnTempMin        = "Temperature_Min (°C)"
	ColumnRainfall       = "Rainfall (mm)"
	ColumnWindSpeed      = "Wind_Speed (km/h)"
	ColumnAQI            = "AQI"
	ColumnPressure       = "Pressure (hPa)"
	ColumnCloudCover     = "Cloud_Cover (%)"
	ColumnDay            = "Day"
	ColumnMonth          = "Month"
	ColumnDayOfWeek      = "DayOfWeek"
	ColumnTempAvg3Day    = "Temp_Avg_3day_rolling"
	ColumnTempAvg7Day    = "Temp_Avg_7day_rolling"
	ColumnHumidity3Day   = "Humidity_3day_rolling"
	FeatureColumnsLength = 13
)

// FeatureColumns lists every column of a FeatureVector in model order
var FeatureColumns = [FeatureColumnsLength]string{
	ColumnTempMax,
	ColumnTempMin,
	ColumnRainfall,
	ColumnWindSpeed,
	ColumnAQI,
	ColumnPressure,
	ColumnCloudCover,
	ColumnDay,
	ColumnMonth,
	ColumnDayOfWeek,
	ColumnTempAvg3Day,
	ColumnTempAvg7Day,
	ColumnHumidity3Day,
}

// Calendar holds the date fields fed to the model
type Calendar struct {
	Day       int
	Month     int
	DayOfWeek int // Monday = 0 ... Sunday = 6
}

// NewCalendar extracts calendar fields from t in t's own location
func NewCalendar(t time.Time) Calendar {
	return Calendar{
		Day:       t.Day(),
		Month:     int(t.Month()),
		DayOfWeek: (int(t.Weekday()) + 6) % 7,
	}
}

// FeatureVector is a single row of model input
type FeatureVector struct {
	TempMax      float64
	TempMin      float64
	Rainfall     float64
	WindSpeed    float64
	AQI          float64
	Pressure     float64
	CloudCover   float64
	Day          int
	Month        int
	DayOfWeek    int
	TempAvg3Day  float64
	TempAvg7Day  float64
	Humidity3Day float64
}

// Values returns the vector's values ordered as FeatureColumns
func (f FeatureVector) Values() [FeatureColumnsLength]float64 {
	return [FeatureColumnsLength]float64{
		f.TempMax,
		f.TempMin,
		f.Rainfall,
		f.WindSpeed,
		f.AQI,
		f.Pressure,
		f.CloudCover,
		float64(f.Day),
		float64(f.Month),
		float64(f.DayOfWeek),
		f.TempAvg3Day,
		f.TempAvg7Day,
		f.Humidity3Day,
	}
}
