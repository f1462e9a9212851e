package dto

type AssignRoleDTO struct {
	UserID uint64 `json:"user_id" validate:"required"`
	RoleID uint64 `json:"role_id" validate:"required"`
}

type DeactivateUserRoleDTO struct {
	UserRoleID uint64 `json:"user_role_id" validate:"required"`
}

type UserRoleDTO struct {
	ID         uint64 `json:"id"`
	UserID     uint64 `json:"user_id"`
	RoleID     uint64 `json:"role_id"`
	RoleName   string `json:"role_name"`
	IsActive   bool   `json:"is_active"`
	AssignedAt string `json:"assigned_at"`
}
