package entities

import (
	"service-hub/pkg/types"
)

type Role struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	types.BaseEntity
}

// UserRole — назначение роли пользователю. Деактивируется, а не удаляется,
// чтобы сохранить историю назначений.
type UserRole struct {
	ID         uint64 `json:"id"`
	UserID     uint64 `json:"user_id"`
	RoleID     uint64 `json:"role_id"`
	RoleName   string `json:"role_name"`
	IsActive   bool   `json:"is_active"`
	AssignedAt string `json:"assigned_at"`
}
