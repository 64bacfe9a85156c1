// Package geocode proxies location search to a key-gated third-party
// provider. Results are cached; outbound calls are rate limited.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"astropredict/internal/domain/models"
	domsvc "astropredict/internal/domain/service"
	"astropredict/internal/service/ratelimit"
	"astropredict/pkg/cache"
	"astropredict/pkg/config"
	xhttp "astropredict/pkg/http"
	applogger "astropredict/pkg/logger"
)

// ErrRateLimited is returned when the outbound request budget is exhausted.
var ErrRateLimited = errors.New("geocode: rate limited")

// Client is a caching geocoding client.
type Client struct {
	baseURL  string
	apiKey   string
	cacheTTL time.Duration
	http     *xhttp.Client
	cache    cache.Service
	limiter  *ratelimit.Limiter
	logger   *applogger.Logger
}

// New builds a geocoding client from config. When no API key is configured
// the client reports disabled and Search fails fast.
func New(cfg *config.Config, c cache.Service, l *applogger.Logger) *Client {
	return &Client{
		baseURL:  cfg.Geocode.BaseURL,
		apiKey:   cfg.Geocode.APIKey,
		cacheTTL: cfg.Geocode.CacheTTL,
		http:     xhttp.NewClient(xhttp.WithTimeout(cfg.Geocode.Timeout)),
		cache:    c,
		limiter:  ratelimit.New(cfg.Geocode.MaxRPS, cfg.Geocode.MaxRPS),
		logger:   l,
	}
}

// Enabled reports whether a provider key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.baseURL != ""
}

type providerPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search resolves a free-form location query. Cached results are served
// without touching the provider.
func (c *Client) Search(ctx context.Context, query string) ([]models.Place, error) {
	if !c.Enabled() {
		return nil, errors.New("geocode: provider not configured")
	}

	key := cache.GenerateKey("geocode", cache.HashKey(query))
	var cached []models.Place
	if c.cache != nil {
		if err := c.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	if !c.limiter.Allow() {
		return nil, ErrRateLimited
	}

	var raw []providerPlace
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/search",
		QueryParams: map[string][]string{
			"q":      {query},
			"format": {"json"},
			"limit":  {"5"},
			"key":    {c.apiKey},
		},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("geocode search: %w", err)
	}

	places := make([]models.Place, 0, len(raw))
	for _, p := range raw {
		lat, lon, ok := parseCoords(p.Lat, p.Lon)
		if !ok {
			continue
		}
		places = append(places, models.Place{
			DisplayName: p.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, places, c.cacheTTL); err != nil && c.logger != nil {
			c.logger.Warn("geocode cache write failed", applogger.Error(err))
		}
	}

	return places, nil
}

var _ domsvc.Geocoder = (*Client)(nil)
