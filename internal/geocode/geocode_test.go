package geocode_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"log/slog"

	"safesignal/internal/config"
	"safesignal/internal/geocode"
	"safesignal/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func newClient(t *testing.T, handler http.Handler) *geocode.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return geocode.NewClient(config.GeocodeConfig{
		BaseURL:   srv.URL,
		UserAgent: "safesignal-test",
		Timeout:   2 * time.Second,
	}, newTestLogger())
}

func TestSearch_ParsesResults(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "union square" {
			t.Errorf("unexpected query %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "safesignal-test" {
			t.Errorf("unexpected user agent %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"display_name": "Union Square, Manhattan, New York", "lat": "40.7359", "lon": "-73.9911"},
			{"display_name": "Union Square, San Francisco", "lat": "37.7880", "lon": "-122.4075"}
		]`))
	}))

	places, err := client.Search(context.Background(), "union square")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("expected 2 places, got %d", len(places))
	}
	if places[0].DisplayName != "Union Square, Manhattan, New York" {
		t.Errorf("unexpected display name %q", places[0].DisplayName)
	}
	if places[0].Lat != 40.7359 || places[0].Lng != -73.9911 {
		t.Errorf("unexpected coordinates %f,%f", places[0].Lat, places[0].Lng)
	}
}

func TestSearch_SkipsMalformedEntries(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"display_name": "Good", "lat": "40.0", "lon": "-74.0"},
			{"display_name": "Bad", "lat": "not-a-number", "lon": "-74.0"}
		]`))
	}))

	places, err := client.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("expected malformed entry dropped, got %d places", len(places))
	}
	if places[0].DisplayName != "Good" {
		t.Errorf("wrong entry survived: %q", places[0].DisplayName)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := client.Search(context.Background(), "   ")
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearch_NoRetryOn4xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.Search(context.Background(), "anything")
	if !errors.Is(err, e.ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected a single attempt on 4xx, got %d", n)
	}
}

func TestSearch_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"display_name": "Eventually", "lat": "40.0", "lon": "-74.0"}]`))
	}))

	places, err := client.Search(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 1 || places[0].DisplayName != "Eventually" {
		t.Fatalf("unexpected places: %+v", places)
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("expected 3 attempts, got %d", n)
	}
}

func TestReverse_OK(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"display_name": "14th St, Manhattan, New York, USA", "lat": "40.7359", "lon": "-73.9911"}`))
	}))

	place, err := client.Reverse(context.Background(), 40.7359, -73.9911)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if place.DisplayName != "14th St, Manhattan, New York, USA" {
		t.Errorf("unexpected display name %q", place.DisplayName)
	}
}

func TestReverse_EmptyDisplayNameIsNotFound(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"display_name": "", "lat": "", "lon": ""}`))
	}))

	_, err := client.Reverse(context.Background(), 40.0, -74.0)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReverse_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := client.Reverse(context.Background(), 120, -74.0)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestFormatAddress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"short name unchanged", "Union Square, Manhattan", "Union Square, Manhattan"},
		{"three parts unchanged", "A, B, C", "A, B, C"},
		{"long name truncated", "14th St, Union Square, Manhattan, New York, NY, USA", "14th St, Union Square, Manhattan"},
		{"whitespace trimmed", "  Union Square  ", "Union Square"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := geocode.FormatAddress(tc.in); got != tc.want {
				t.Fatalf("FormatAddress(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
