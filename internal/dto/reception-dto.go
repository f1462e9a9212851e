package dto

import "github.com/aarondl/null/v8"

// ActClientDTO — клиент в заявке на создание акта. Либо указывается ID
// существующего клиента (его контактные данные при этом обновляются),
// либо поля нового клиента целиком.
type ActClientDTO struct {
	ID            *uint64     `json:"id" validate:"omitempty"`
	ShortName     string      `json:"short_name" validate:"omitempty,max=50"`
	FullName      string      `json:"full_name" validate:"omitempty,max=100"`
	ContactPerson string      `json:"contact_person" validate:"required,max=200"`
	Phone         string      `json:"phone" validate:"required,phone_number"`
	Email         null.String `json:"email" validate:"omitempty"`
	Address       null.String `json:"address" validate:"omitempty"`
}

// EquipmentLineDTO — одна строка оборудования в заявке.
// Строки без выбранной модели пропускаются при создании акта.
type EquipmentLineDTO struct {
	ModelID           *uint64     `json:"model_id"`
	SerialNumber      string      `json:"serial_number" validate:"omitempty,max=30"`
	InventoryNumber   null.String `json:"inventory_number" validate:"omitempty"`
	DefectDescription null.String `json:"defect_description" validate:"omitempty"`
	GuaranteeType     string      `json:"guarantee_type" validate:"omitempty,guarantee_type"`
}

type CreateReceptionActDTO struct {
	Client        ActClientDTO       `json:"client" validate:"required"`
	EquipmentList []EquipmentLineDTO `json:"equipment_list" validate:"required"`
}

type ReceptionActDTO struct {
	ID        uint64 `json:"id"`
	ActNumber string `json:"act_number"`
	ClientID  uint64 `json:"client_id"`
	Receiver  string `json:"receiver"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
	PrintedAt string `json:"printed_at,omitempty"`
}

type CreatedActDTO struct {
	ID             uint64 `json:"id"`
	ActNumber      string `json:"act_number"`
	ClientID       uint64 `json:"client_id"`
	EquipmentCount int    `json:"equipment_count"`
}

// ActEquipmentDTO — строка оборудования в детали акта и на дашбордах.
type ActEquipmentDTO struct {
	ID                uint64 `json:"id"`
	ActID             uint64 `json:"act_id"`
	ActNumber         string `json:"act_number,omitempty"`
	ModelID           uint64 `json:"model_id"`
	ModelFullName     string `json:"model_full_name"`
	SerialNumber      string `json:"serial_number"`
	InventoryNumber   string `json:"inventory_number,omitempty"`
	DefectDescription string `json:"defect_description,omitempty"`
	GuaranteeType     string `json:"guarantee_type"`
	SpecialistID      *uint64 `json:"specialist_id,omitempty"`
	Status            string `json:"status"`
	Priority          int    `json:"priority"`
	CreatedAt         string `json:"created_at"`
}

type ActDetailDTO struct {
	Act       ReceptionActDTO   `json:"act"`
	Client    ClientDTO         `json:"client"`
	Equipment []ActEquipmentDTO `json:"equipment"`
}
