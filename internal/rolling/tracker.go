package rolling

import "sync"

const (
	// WindowSize is the number of daily maxima kept per city
	WindowSize  = 7
	shortWindow = 3
)

// Tracker keeps a bounded in-memory history of temp_max values per city.
// History lives for the lifetime of the process only.
type Tracker struct {
	mu      sync.Mutex
	history map[string][]float64
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		history: make(map[string][]float64),
	}
}

// Update records today's maximum for a city and returns the 3 and 7 entry
// rolling averages. Until three values exist the short average is the
// current value, not a mean.
func (t *Tracker) Update(city string, todayTempMax float64) (avg3, avg7 float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	values := append(t.history[city], todayTempMax)
	if len(values) > WindowSize {
		values = values[len(values)-WindowSize:]
	}
	t.history[city] = values

	avg3 = todayTempMax
	if len(values) >= shortWindow {
		avg3 = mean(values[len(values)-shortWindow:])
	}
	avg7 = mean(values)

	return avg3, avg7
}

// History returns a copy of the retained values for a city, oldest first
func (t *Tracker) History(city string) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	values := t.history[city]
	out := make([]float64, len(values))
	copy(out, values)
	return out
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
