package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"safesignal/internal/config"
	"safesignal/pkg/e"
	"safesignal/pkg/geo"
)

// Place is one geocoding result.
type Place struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

type Service interface {
	Search(ctx context.Context, query string) ([]Place, error)
	Reverse(ctx context.Context, lat, lng float64) (*Place, error)
}

// Client talks to a Nominatim-compatible endpoint.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

func NewClient(cfg config.GeocodeConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// nominatimPlace carries coordinates as strings on the wire.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	const op = "geocode.Search"

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("%s/search?format=json&limit=5&q=%s", c.baseURL, url.QueryEscape(query))

	var raw []nominatimPlace
	if err := c.getJSON(ctx, op, endpoint, &raw); err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(raw))
	for _, p := range raw {
		place, err := p.toPlace()
		if err != nil {
			c.logger.Warn("skipping malformed geocode result", slog.Any("error", err))
			continue
		}
		places = append(places, place)
	}

	return places, nil
}

func (c *Client) Reverse(ctx context.Context, lat, lng float64) (*Place, error) {
	const op = "geocode.Reverse"

	if !geo.ValidCoordinates(lat, lng) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", c.baseURL, lat, lng)

	var raw nominatimPlace
	if err := c.getJSON(ctx, op, endpoint, &raw); err != nil {
		return nil, err
	}
	if raw.DisplayName == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	place, err := raw.toPlace()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInternal)
	}

	return &place, nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	const maxRetries = 2

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return e.WrapError(ctx, op, ctx.Err())
		}
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.logger.Warn("geocode request failed",
				slog.String("op", op),
				slog.Int("attempt", attempt+1),
				slog.Any("error", err),
			)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status %s", resp.Status)
			// retrying a 4xx will not help
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				break
			}
			continue
		}

		err = json.NewDecoder(resp.Body).Decode(out)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return fmt.Errorf("%s: %v: %w", op, lastErr, e.ErrInternal)
}

func (p nominatimPlace) toPlace() (Place, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("parse lat: %w", err)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("parse lon: %w", err)
	}
	return Place{DisplayName: p.DisplayName, Lat: lat, Lng: lng}, nil
}

// FormatAddress shortens a full display name to its leading components,
// the way the app shows a pin's address.
func FormatAddress(displayName string) string {
	parts := strings.Split(displayName, ",")
	if len(parts) <= 3 {
		return strings.TrimSpace(displayName)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return strings.Join(parts[:3], ", ")
}
