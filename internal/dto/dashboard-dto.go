package dto

// ActSummaryDTO — акт в списке на дашборде приёмщика с количеством
// принятого по нему оборудования.
type ActSummaryDTO struct {
	ID             uint64 `json:"id"`
	ActNumber      string `json:"act_number"`
	ClientName     string `json:"client_name"`
	EquipmentCount int64  `json:"equipment_count"`
	CreatedAt      string `json:"created_at"`
}

type ReceiverDashboardDTO struct {
	ReadyEquipment []ActEquipmentDTO `json:"ready_equipment"`
	RecentActs     []ActSummaryDTO   `json:"recent_acts"`
}

// CoordinatorItemDTO — строка дашборда координатора: оборудование в работе
// с числом полных дней с момента приёмки.
type CoordinatorItemDTO struct {
	ActEquipmentDTO
	ClientName    string `json:"client_name"`
	DaysInService int    `json:"days_in_service"`
}
