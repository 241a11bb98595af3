package geo

import (
	"context"
	"errors"
	"log"
	"math"
)

// ErrNotFound reports that a location string could not be resolved to
// coordinates.
var ErrNotFound = errors.New("location not found")

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a free-text location to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (Coordinates, error)
}

// Scorer converts pairs of location strings into distances and bounded
// proximity scores. Geocoding failures are soft: they degrade the distance to
// +Inf and never surface to the caller.
type Scorer struct {
	geocoder Geocoder
	logger   *log.Logger
}

func NewScorer(geocoder Geocoder, logger *log.Logger) *Scorer {
	if logger == nil {
		logger = log.Default()
	}
	return &Scorer{geocoder: geocoder, logger: logger}
}

// DistanceMiles returns the great-circle distance between two locations, or
// +Inf when either side fails to geocode.
func (s *Scorer) DistanceMiles(ctx context.Context, locA, locB string) float64 {
	if s == nil || s.geocoder == nil {
		return math.Inf(1)
	}

	a, err := s.geocoder.Geocode(ctx, locA)
	if err != nil {
		s.logGeocodeFailure(locA, err)
		return math.Inf(1)
	}
	b, err := s.geocoder.Geocode(ctx, locB)
	if err != nil {
		s.logGeocodeFailure(locB, err)
		return math.Inf(1)
	}

	return HaversineMiles(a, b)
}

// ProximityScore maps a distance in miles to [0, 1]: max(0, 1 - d/1000).
// Distances of 1000 miles or more, including +Inf, floor to 0.
func ProximityScore(distanceMiles float64) float64 {
	if math.IsInf(distanceMiles, 1) || math.IsNaN(distanceMiles) {
		return 0
	}
	score := 1 - distanceMiles/1000
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

const earthRadiusMiles = 3958.8

// HaversineMiles computes the great-circle distance between two coordinate
// pairs.
func HaversineMiles(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func (s *Scorer) logGeocodeFailure(location string, err error) {
	if errors.Is(err, ErrNotFound) {
		s.logger.Printf("[Geo] location not found: %q", location)
		return
	}
	s.logger.Printf("[Geo] geocode failed for %q: %v", location, err)
}
