package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportActive  ReportStatus = "active"
	ReportExpired ReportStatus = "expired"
)

type ReportCategory string

const (
	CategorySafety ReportCategory = "safety"
	CategoryHazard ReportCategory = "hazard"
	CategoryInfo   ReportCategory = "info"
)

type Report struct {
	ID        uuid.UUID      `json:"id"`
	DeviceID  uuid.UUID      `json:"device_id"`
	Lat       float64        `json:"lat" validate:"lat"` // -90..90
	Lng       float64        `json:"lng" validate:"lng"` // -180..180
	Text      string         `json:"text" validate:"required,min=1,max=500"`
	Language  string         `json:"language" validate:"omitempty,oneof=en es"`
	Category  ReportCategory `json:"category" validate:"required,oneof=safety hazard info"`
	HasPhoto  bool           `json:"has_photo"`
	Status    ReportStatus   `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// CachedReport is the slim projection kept in the active-report cache.
type CachedReport struct {
	ID       uuid.UUID      `json:"id"`
	Lat      float64        `json:"lat"`
	Lng      float64        `json:"lng"`
	Category ReportCategory `json:"category"`
}

type NearbyReport struct {
	ID             uuid.UUID      `json:"id"`
	Lat            float64        `json:"lat"`
	Lng            float64        `json:"lng"`
	Category       ReportCategory `json:"category"`
	DistanceMeters float64        `json:"distance_meters"`
	// Distance is the human-readable rendering (feet or miles).
	Distance string `json:"distance"`
}
