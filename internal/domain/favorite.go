package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAlertDistanceMeters is one mile, the radius a new favorite
// starts with when the request leaves it unset.
const DefaultAlertDistanceMeters = 1609.34

type FavoritePlace struct {
	ID                 uuid.UUID `json:"id"`
	DeviceID           uuid.UUID `json:"device_id"`
	Name               string    `json:"name" validate:"required,min=1,max=50"`
	Description        string    `json:"description" validate:"max=200"`
	Lat                float64   `json:"lat" validate:"lat"`
	Lng                float64   `json:"lng" validate:"lng"`
	AlertDistanceM     float64   `json:"alert_distance_m" validate:"required,alert_distance"`
	EnableSafetyAlerts bool      `json:"enable_safety_alerts"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateFavoriteRequest struct {
	DeviceID           string  `json:"device_id" validate:"required,uuid"`
	Name               string  `json:"name" validate:"required,min=1,max=50"`
	Description        string  `json:"description" validate:"max=200"`
	Lat                float64 `json:"lat" validate:"lat"`
	Lng                float64 `json:"lng" validate:"lng"`
	AlertDistanceM     float64 `json:"alert_distance_m" validate:"omitempty,alert_distance"`
	EnableSafetyAlerts *bool   `json:"enable_safety_alerts"`
}

type UpdateFavoriteRequest struct {
	Name               *string  `json:"name" validate:"omitempty,min=1,max=50"`
	Description        *string  `json:"description" validate:"omitempty,max=200"`
	Lat                *float64 `json:"lat" validate:"omitempty,lat"`
	Lng                *float64 `json:"lng" validate:"omitempty,lng"`
	AlertDistanceM     *float64 `json:"alert_distance_m" validate:"omitempty,alert_distance"`
	EnableSafetyAlerts *bool    `json:"enable_safety_alerts"`
}
