package timezone

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"heat-risk/internal/types"

	"github.com/ringsaturn/tzf"
)

// Service resolves the local time zone of a coordinate
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
	Location(coords types.Coords) (*time.Location, error)
}

type service struct {
	finder tzf.F

	mu        sync.RWMutex
	locations map[string]*time.Location
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the shared timezone service. The finder holds
// the full polygon set in memory, so it is built once per process.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &service{
			finder:    finder,
			locations: make(map[string]*time.Location),
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA zone name for the given coordinates,
// e.g. "Asia/Kolkata"
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	name := s.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}
	return name, nil
}

// Location returns the loaded *time.Location for coordinates. Loaded zones
// are cached by name.
func (s *service) Location(coords types.Coords) (*time.Location, error) {
	name, err := s.GetTimezone(coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	loc, ok := s.locations[name]
	s.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err = time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", name, err)
	}

	s.mu.Lock()
	s.locations[name] = loc
	s.mu.Unlock()

	return loc, nil
}

// CalendarAt returns the calendar fields of now as observed at coords. When
// the zone cannot be resolved the calendar falls back to now's own location.
func CalendarAt(svc Service, now time.Time, coords types.Coords, logger *slog.Logger) types.Calendar {
	if svc == nil {
		return types.NewCalendar(now)
	}

	loc, err := svc.Location(coords)
	if err != nil {
		logger.Warn("falling back to server timezone",
			"lat", coords.Latitude,
			"lon", coords.Longitude,
			"error", err,
		)
		return types.NewCalendar(now)
	}

	return types.NewCalendar(now.In(loc))
}
