package httptransport

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type TileDTO struct {
	BagID      string `json:"bag_id"`
	Status     string `json:"status"`
	ReportedBy string `json:"reported_by"`
	Ts         int64  `json:"ts"`
	BloodType  string `json:"blood_type,omitempty"`
	Volume     int    `json:"volume,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
}

type MosaicDTO struct {
	Rows   int            `json:"rows"`
	Cols   int            `json:"cols"`
	Policy string         `json:"policy"`
	Tiles  []TileDTO      `json:"tiles"`
	Counts map[string]int `json:"counts"`
}

type MosaicResponse struct {
	Status string    `json:"status"`
	Data   MosaicDTO `json:"data"`
}

type ActivityDTO struct {
	Items  []TileDTO      `json:"items"`
	Counts map[string]int `json:"counts"`
}

type ActivityResponse struct {
	Status string      `json:"status"`
	Data   ActivityDTO `json:"data"`
}
