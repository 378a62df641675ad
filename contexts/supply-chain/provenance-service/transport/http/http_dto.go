package httptransport

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	BagID    string `json:"bag_id,omitempty"`
	BaseID   string `json:"base_id,omitempty"`
	Quantity int    `json:"quantity,omitempty"`

	ComponentType      string `json:"component_type"`
	AdditiveSolution   string `json:"additive_solution,omitempty"`
	DonationType       string `json:"donation_type"`
	BloodType          string `json:"blood_type"`
	Volume             int    `json:"volume"`
	AssignedCourierID  string `json:"assigned_courier_id"`
	AssignedHospitalID string `json:"assigned_hospital_id"`
	CollectionSiteID   string `json:"collection_site_id,omitempty"`
	Leukoreduced       bool   `json:"leukoreduced"`
	Irradiated         bool   `json:"irradiated"`
	CMVNegative        bool   `json:"cmv_negative"`
}

type RegisteredUnitDTO struct {
	BagID          string `json:"bag_id"`
	TransactionRef string `json:"transaction_ref"`
	LedgerStatus   string `json:"ledger_status"`
}

type RegisterResponse struct {
	Status string              `json:"status"`
	Data   []RegisteredUnitDTO `json:"data"`
}

type TransitRequest struct {
	PresetEvent string `json:"preset_event,omitempty"`
	Note        string `json:"note,omitempty"`
}

type FinalizeRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type ReceiptDTO struct {
	TransactionRef string `json:"transaction_ref"`
	LedgerStatus   string `json:"ledger_status"`
}

type SubmitResponse struct {
	Status string     `json:"status"`
	Data   ReceiptDTO `json:"data"`
}

type CreationDTO struct {
	ComponentType      string `json:"component_type"`
	AdditiveSolution   string `json:"additive_solution"`
	StorageTempRange   string `json:"storage_temp_range"`
	DonationType       string `json:"donation_type"`
	BloodType          string `json:"blood_type"`
	Volume             int    `json:"volume"`
	CollectionDate     string `json:"collection_date"`
	ExpiryDate         string `json:"expiry_date"`
	AssignedCourierID  string `json:"assigned_courier_id"`
	AssignedHospitalID string `json:"assigned_hospital_id"`
	CollectionSiteID   string `json:"collection_site_id,omitempty"`
	Leukoreduced       bool   `json:"leukoreduced"`
	Irradiated         bool   `json:"irradiated"`
	CMVNegative        bool   `json:"cmv_negative"`
}

type EventDTO struct {
	BagID      string       `json:"bag_id"`
	Status     string       `json:"status"`
	ReportedBy string       `json:"reported_by"`
	Ts         int64        `json:"ts"`
	ReportedAt string       `json:"reported_at"`
	Location   string       `json:"location,omitempty"`
	Notes      string       `json:"notes,omitempty"`
	Creation   *CreationDTO `json:"creation,omitempty"`
}

type BagDTO struct {
	BagID             string      `json:"bag_id"`
	CurrentStatus     string      `json:"current_status"`
	DuplicateCreation bool        `json:"duplicate_creation,omitempty"`
	Creation          CreationDTO `json:"creation"`
	RegisteredBy      string      `json:"registered_by"`
	History           []EventDTO  `json:"history"`
}

type BagResponse struct {
	Status string `json:"status"`
	Data   BagDTO `json:"data"`
}

type AuthorizationDTO struct {
	Allowed            bool   `json:"allowed"`
	Reason             string `json:"reason,omitempty"`
	RequiredIdentity   string `json:"required_identity,omitempty"`
	AssignedCourierID  string `json:"assigned_courier_id,omitempty"`
	AssignedHospitalID string `json:"assigned_hospital_id,omitempty"`
}

type AuthorizationResponse struct {
	Status string           `json:"status"`
	Data   AuthorizationDTO `json:"data"`
}
