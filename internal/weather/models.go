package weather

import "heat-risk/internal/types"

// FetchStatus tells a usable sample apart from missing data
type FetchStatus int

const (
	StatusUnavailable FetchStatus = iota
	StatusAvailable
)

func (s FetchStatus) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// FetchResult is the outcome of fetching weather for one city. Sample is
// only meaningful when Status is StatusAvailable; Reason explains an
// unavailable result.
type FetchResult struct {
	Status FetchStatus
	Sample types.WeatherSample
	Reason error
}

// Available reports whether the result carries a sample
func (r FetchResult) Available() bool {
	return r.Status == StatusAvailable
}

func available(sample types.WeatherSample) FetchResult {
	return FetchResult{Status: StatusAvailable, Sample: sample}
}

func unavailable(reason error) FetchResult {
	return FetchResult{Status: StatusUnavailable, Reason: reason}
}
