package openweather

import (
	"encoding/json"
	"strconv"
)

// StatusCode is the "cod" field of a current weather response. The API
// returns it as a number on success and as a string on most errors.
type StatusCode int

func (s *StatusCode) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = StatusCode(n)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return err
	}
	*s = StatusCode(n)
	return nil
}

// CurrentWeatherAPIResponse is the body of GET /weather
type CurrentWeatherAPIResponse struct {
	Cod     StatusCode `json:"cod"`
	Message string     `json:"message"`
	Name    string     `json:"name"`
	Coord   struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s with units=metric
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	// Rain is omitted entirely when there has been no precipitation
	Rain *struct {
		OneHour float64 `json:"1h"`
	} `json:"rain,omitempty"`
	Dt int64 `json:"dt"`
}

// AirPollutionAPIResponse is the body of GET /air_pollution
type AirPollutionAPIResponse struct {
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
	List []struct {
		Main struct {
			AQI int `json:"aqi"` // 1 (good) to 5 (very poor)
		} `json:"main"`
		Components map[string]float64 `json:"components"`
		Dt         int64              `json:"dt"`
	} `json:"list"`
}
