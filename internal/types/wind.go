package types

const MsToKph = 3.6

// NewWindSpeedKphFromMs converts a wind speed in metres per second to km/h
func NewWindSpeedKphFromMs(speedInMs float64) float64 {
	return speedInMs * MsToKph
}
