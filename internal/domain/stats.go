package domain

import (
	"time"

	"github.com/google/uuid"
)

type UsageStats struct {
	DeviceCount int64 `json:"device_count"`
	TotalChecks int64 `json:"total_checks"`
	ReportCount int64 `json:"report_count"`
	Minutes     int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 day max
}

// LocationCheck records one nearby-report lookup for usage stats.
type LocationCheck struct {
	ID        uuid.UUID   `json:"id"`
	DeviceID  uuid.UUID   `json:"device_id"`
	Lat       float64     `json:"lat"`
	Lng       float64     `json:"lng"`
	ReportIDs []uuid.UUID `json:"report_ids"`
	CheckedAt time.Time   `json:"checked_at"`
}
