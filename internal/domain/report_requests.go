package domain

type CreateReportRequest struct {
	DeviceID string         `json:"device_id" validate:"required,uuid"`
	Lat      float64        `json:"lat" validate:"lat"`
	Lng      float64        `json:"lng" validate:"lng"`
	Text     string         `json:"text" validate:"required,min=1,max=500"`
	Language string         `json:"language" validate:"omitempty,oneof=en es"`
	Category ReportCategory `json:"category" validate:"required,oneof=safety hazard info"`
	Photo    []byte         `json:"photo,omitempty"`
}

type ListReportsRequest struct {
	Page  int `query:"page" validate:"min=1"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type ListReportsResponse struct {
	Reports []*Report `json:"reports"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Total   int64     `json:"total"`
}

type LocationCheckRequest struct {
	DeviceID string  `json:"device_id" validate:"required,uuid"`
	Lat      float64 `json:"lat" validate:"lat"`
	Lng      float64 `json:"lng" validate:"lng"`
}

type LocationCheckResponse struct {
	Reports []NearbyReport `json:"reports"`
}
