package geo

import (
	"fmt"
	"math"
)

const (
	earthRadiusM = 6371000.0
	metersInMile = 1609.0
	metersInFoot = 0.3048
)

// DistanceMeters returns the great-circle distance between two points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// FormatDistance renders a distance the way the app shows it: whole
// feet below one mile, miles with one decimal at 1609 m and beyond.
func FormatDistance(meters float64) string {
	if meters < 0 {
		meters = 0
	}
	if meters < metersInMile {
		return fmt.Sprintf("%d ft", int(math.Round(meters/metersInFoot)))
	}
	return fmt.Sprintf("%.1f mi", meters/1609.34)
}

func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
