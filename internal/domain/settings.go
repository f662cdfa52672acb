package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeviceSettings is the per-device preference record. Absent rows read
// back as DefaultSettings.
type DeviceSettings struct {
	DeviceID                   uuid.UUID `json:"device_id"`
	Language                   string    `json:"language" validate:"oneof=en es"`
	SoundAlertsEnabled         bool      `json:"sound_alerts_enabled"`
	AlertRadiusM               float64   `json:"alert_radius_m" validate:"min=0"`
	EmergencyOverrideDistanceM float64   `json:"emergency_override_distance_m" validate:"min=0"`
	EmergencyBypassSilent      bool      `json:"emergency_bypass_silent"`
	DarkMode                   bool      `json:"dark_mode"`
	FirstReportCreated         bool      `json:"first_report_created"`
	InstructionsSeen           bool      `json:"instructions_seen"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

func DefaultSettings(deviceID uuid.UUID) DeviceSettings {
	return DeviceSettings{
		DeviceID:                   deviceID,
		Language:                   "en",
		SoundAlertsEnabled:         true,
		AlertRadiusM:               DefaultAlertDistanceMeters,
		EmergencyOverrideDistanceM: 400,
	}
}

type UpdateSettingsRequest struct {
	Language                   *string  `json:"language" validate:"omitempty,oneof=en es"`
	SoundAlertsEnabled         *bool    `json:"sound_alerts_enabled"`
	AlertRadiusM               *float64 `json:"alert_radius_m" validate:"omitempty,alert_distance"`
	EmergencyOverrideDistanceM *float64 `json:"emergency_override_distance_m" validate:"omitempty,min=0"`
	EmergencyBypassSilent      *bool    `json:"emergency_bypass_silent"`
	DarkMode                   *bool    `json:"dark_mode"`
	FirstReportCreated         *bool    `json:"first_report_created"`
	InstructionsSeen           *bool    `json:"instructions_seen"`
}
