package geocode

import (
	"context"
	"strings"
	"time"

	"talent-match/internal/domain/geo"
	"talent-match/internal/usecase"
)

// Locations are stable, so resolved coordinates can live far longer than
// match reports.
const coordinateTTL = 24 * time.Hour

// Cached wraps a geocoder with a JSON cache keyed by normalized location
// text. Cache failures fall through to the inner geocoder.
type Cached struct {
	inner geo.Geocoder
	cache usecase.MatchCache
}

func NewCached(inner geo.Geocoder, cache usecase.MatchCache) *Cached {
	return &Cached{inner: inner, cache: cache}
}

func (c *Cached) Geocode(ctx context.Context, location string) (geo.Coordinates, error) {
	key := "geo:" + strings.ToLower(strings.TrimSpace(location))

	if c.cache != nil {
		var coords geo.Coordinates
		if ok, err := c.cache.GetJSON(ctx, key, &coords); err == nil && ok {
			return coords, nil
		}
	}

	coords, err := c.inner.Geocode(ctx, location)
	if err != nil {
		return geo.Coordinates{}, err
	}

	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, key, coords, coordinateTTL)
	}
	return coords, nil
}
