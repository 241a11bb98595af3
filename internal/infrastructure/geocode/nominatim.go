package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"talent-match/internal/config"
	"talent-match/internal/domain/geo"
)

// Client geocodes free-text locations against a Nominatim endpoint. Calls
// carry a per-request timeout so a slow geocoder cannot stall a scoring run.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatim(cfg config.GeocoderConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *Client) Geocode(ctx context.Context, location string) (geo.Coordinates, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return geo.Coordinates{}, geo.ErrNotFound
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return geo.Coordinates{}, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geo.Coordinates{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geo.Coordinates{}, fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return geo.Coordinates{}, fmt.Errorf("nominatim: decode response: %w", err)
	}
	if len(results) == 0 {
		return geo.Coordinates{}, geo.ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("nominatim: bad latitude %q", results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("nominatim: bad longitude %q", results[0].Lon)
	}

	return geo.Coordinates{Lat: lat, Lon: lon}, nil
}
