package timezone

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"heat-risk/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Delhi",
			latitude:  28.6139,
			longitude: 77.2090,
			want:      "Asia/Kolkata",
		},
		{
			name:      "Ahmedabad",
			latitude:  23.0225,
			longitude: 72.5714,
			want:      "Asia/Kolkata",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Location(t *testing.T) {
	svc, err := NewService()
	require.NoError(t, err)

	loc, err := svc.Location(types.NewCoords(19.0760, 72.8777))
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())

	again, err := svc.Location(types.NewCoords(13.0827, 80.2707))
	require.NoError(t, err)
	assert.Same(t, loc, again)
}

type stubService struct {
	loc *time.Location
	err error
}

func (s stubService) GetTimezone(_, _ float64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.loc.String(), nil
}

func (s stubService) Location(types.Coords) (*time.Location, error) {
	return s.loc, s.err
}

func TestCalendarAt(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	kolkata := time.FixedZone("IST", 5*60*60+30*60)

	// Sunday 2024-06-30 20:00 UTC is Monday 2024-07-01 01:30 in India
	now := time.Date(2024, time.June, 30, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		svc  Service
		want types.Calendar
	}{
		{
			name: "city local date",
			svc:  stubService{loc: kolkata},
			want: types.Calendar{Day: 1, Month: 7, DayOfWeek: 0},
		},
		{
			name: "lookup failure falls back",
			svc:  stubService{err: errors.New("no zone")},
			want: types.Calendar{Day: 30, Month: 6, DayOfWeek: 6},
		},
		{
			name: "no service",
			svc:  nil,
			want: types.Calendar{Day: 30, Month: 6, DayOfWeek: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalendarAt(tt.svc, now, types.NewCoords(28.6139, 77.2090), logger)
			assert.Equal(t, tt.want, got)
		})
	}
}
