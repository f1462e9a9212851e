package dto

type UpdateEquipmentStatusDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required"`
	Status      string `json:"status" validate:"required,equipment_status"`
}

type UpdateEquipmentPriorityDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required"`
	Priority    *int   `json:"priority" validate:"required"`
}

type UpdateEquipmentGuaranteeDTO struct {
	EquipmentID   uint64 `json:"equipment_id" validate:"required"`
	GuaranteeType string `json:"guarantee_type" validate:"required,guarantee_type"`
}

type AssignSpecialistDTO struct {
	EquipmentID uint64 `json:"equipment_id" validate:"required"`
	UserRoleID  uint64 `json:"user_role_id" validate:"required"`
}
