package dto

type ActReportItemDTO struct {
	ActID           uint64 `json:"act_id"`
	ActNumber       string `json:"act_number"`
	CreatedAt       string `json:"created_at"`
	ClientShortName string `json:"client_short_name"`
	ClientFullName  string `json:"client_full_name,omitempty"`
	ContactPerson   string `json:"contact_person,omitempty"`
	ReceiverFio     string `json:"receiver_fio"`
	EquipmentCount  int64  `json:"equipment_count"`
	IssuedCount     int64  `json:"issued_count"`
	PrintedAt       string `json:"printed_at,omitempty"`
}
