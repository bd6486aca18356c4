package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mGaurav-dev/SIH-25/core"
)

const (
	defaultBaseURL     = "https://api.openweathermap.org"
	defaultHTTPTimeout = 10 * time.Second
)

// Service resolves a location name to a current weather snapshot.
type Service interface {
	// Snapshot is best effort: on any failure it returns a snapshot with
	// Present unset rather than an error.
	Snapshot(ctx context.Context, location string) *core.WeatherSnapshot
}

// Client talks to the OpenWeather geocoding and current weather APIs.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Service = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = base
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewClient creates an OpenWeather client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		logger:     slog.Default().With("component", "openweather"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Snapshot geocodes the location and fetches its current weather. Failures
// at either step produce an absent snapshot, never an error.
func (c *Client) Snapshot(ctx context.Context, location string) *core.WeatherSnapshot {
	lat, lon, err := c.Geocode(ctx, location)
	if err != nil {
		c.logger.Warn("geocoding failed, continuing without weather",
			"location", location, "error", err)
		return &core.WeatherSnapshot{}
	}

	snapshot, err := c.Current(ctx, lat, lon)
	if err != nil {
		c.logger.Warn("weather lookup failed, continuing without weather",
			"location", location, "error", err)
		return &core.WeatherSnapshot{}
	}
	return snapshot
}

type geocodeEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocode resolves a location name to coordinates.
func (c *Client) Geocode(ctx context.Context, location string) (float64, float64, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("limit", "1")
	params.Set("appid", c.apiKey)

	var entries []geocodeEntry
	if err := c.getJSON(ctx, "/geo/1.0/direct", params, &entries); err != nil {
		return 0, 0, err
	}
	if len(entries) == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
	}
	return entries[0].Lat, entries[0].Lon, nil
}

type currentWeatherPayload struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

// Current fetches the current weather for coordinates, in metric units.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*core.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	var payload currentWeatherPayload
	if err := c.getJSON(ctx, "/data/2.5/weather", params, &payload); err != nil {
		return nil, err
	}

	snapshot := &core.WeatherSnapshot{
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed,
		Station:     payload.Name,
		Present:     true,
	}
	if len(payload.Weather) > 0 {
		snapshot.Description = payload.Weather[0].Description
		snapshot.Conditions = payload.Weather[0].Main
	}
	return snapshot, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrRequestFailed, path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
