package geo

import (
	"math"
	"testing"
)

func TestDistanceMeters_KnownPair(t *testing.T) {
	t.Parallel()

	// Union Square to the Ferry Building, San Francisco: ~1.6 km.
	d := DistanceMeters(37.7880, -122.4075, 37.7955, -122.3937)
	if d < 1400 || d > 1700 {
		t.Fatalf("unexpected distance: %f", d)
	}
}

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	t.Parallel()

	d := DistanceMeters(40.0, -70.0, 40.0, -70.0)
	if math.Abs(d) > 0.001 {
		t.Fatalf("expected zero distance, got %f", d)
	}
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		meters float64
		want   string
	}{
		{"zero", 0, "0 ft"},
		{"hundred meters", 100, "328 ft"},
		{"just below mile boundary", 1608.9, "5279 ft"},
		{"at mile boundary", 1609, "1.0 mi"},
		{"two miles", 3218.68, "2.0 mi"},
		{"negative clamps to zero", -5, "0 ft"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDistance(tc.meters); got != tc.want {
				t.Fatalf("FormatDistance(%v) = %q, want %q", tc.meters, got, tc.want)
			}
		})
	}
}

func TestValidCoordinates(t *testing.T) {
	t.Parallel()

	if !ValidCoordinates(90, 180) {
		t.Fatal("boundary coordinates should be valid")
	}
	if ValidCoordinates(90.01, 0) || ValidCoordinates(0, -180.5) {
		t.Fatal("out-of-range coordinates should be invalid")
	}
}
