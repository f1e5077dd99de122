package predict

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"heat-risk/internal/types"
)

// ErrInvalidRequest means the request body cannot drive a prediction run
var ErrInvalidRequest = errors.New("invalid request")

// Number is an optional numeric request field. It accepts a JSON number or
// a numeric string; null and the empty string leave it unset.
type Number struct {
	Value float64
	Valid bool
}

// NewNumber returns a set Number
func NewNumber(v float64) Number {
	return Number{Value: v, Valid: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	if string(data) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = NewNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a number or numeric string, got %s", data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("could not convert string to float: %q", s)
	}
	*n = NewNumber(f)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Request is the body of POST /predict_all
type Request struct {
	UseManual  bool    `json:"use_manual" example:"true"`
	TargetCity *string `json:"target_city" example:"Delhi"`
	Temp       Number  `json:"temp" swaggertype:"number" example:"45"`
	Humidity   Number  `json:"humidity" swaggertype:"number" example:"20"`
	Wind       Number  `json:"wind" swaggertype:"number" example:"10"`
	Pressure   Number  `json:"pressure" swaggertype:"number" example:"1000"`
}

// Validate checks that manual readings are present when use_manual is set
func (r Request) Validate() error {
	if !r.UseManual {
		return nil
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value Number
	}{
		{"temp", r.Temp},
		{"humidity", r.Humidity},
		{"wind", r.Wind},
		{"pressure", r.Pressure},
	} {
		if !f.value.Valid {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: use_manual requires %s", ErrInvalidRequest, strings.Join(missing, ", "))
	}
	return nil
}

// IsManualFor reports whether city takes its readings from the request
func (r Request) IsManualFor(city string) bool {
	return r.UseManual && r.TargetCity != nil && *r.TargetCity != "" && *r.TargetCity == city
}

// ManualSample builds the synthesized sample for the target city
func (r Request) ManualSample() types.WeatherSample {
	return types.NewManualSample(r.Temp.Value, r.Humidity.Value, r.Wind.Value, r.Pressure.Value)
}
