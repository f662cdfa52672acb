package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert joins a report with the target it came close to: either a
// favorite place (FavoriteID set) or the device's last known location.
type Alert struct {
	ID             uuid.UUID  `json:"id"`
	DeviceID       uuid.UUID  `json:"device_id"`
	ReportID       uuid.UUID  `json:"report_id"`
	FavoriteID     *uuid.UUID `json:"favorite_id,omitempty"`
	FavoriteName   string     `json:"favorite_name,omitempty"`
	DistanceMeters float64    `json:"distance_meters"`
	// Distance is the human-readable rendering, filled when listing.
	Distance     string    `json:"distance,omitempty"`
	BypassSilent bool      `json:"bypass_silent"`
	IsViewed     bool      `json:"is_viewed"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportEvent is what the evaluation queue carries for each new report.
type ReportEvent struct {
	ReportID  uuid.UUID      `json:"report_id"`
	DeviceID  uuid.UUID      `json:"device_id"`
	Lat       float64        `json:"lat"`
	Lng       float64        `json:"lng"`
	Category  ReportCategory `json:"category"`
	CreatedAt time.Time      `json:"created_at"`
}

// AlertPayload is the delivery-queue message handed to the sender.
type AlertPayload struct {
	AlertID        uuid.UUID  `json:"alert_id"`
	DeviceID       uuid.UUID  `json:"device_id"`
	ReportID       uuid.UUID  `json:"report_id"`
	FavoriteID     *uuid.UUID `json:"favorite_id,omitempty"`
	FavoriteName   string     `json:"favorite_name,omitempty"`
	DistanceMeters float64    `json:"distance_meters"`
	BypassSilent   bool       `json:"bypass_silent"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ListAlertsResponse struct {
	Alerts      []Alert `json:"alerts"`
	HasUnviewed bool    `json:"has_unviewed"`
}
