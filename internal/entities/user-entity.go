package entities

import (
	"service-hub/pkg/types"
)

type User struct {
	ID           uint64 `json:"id"`
	Login        string `json:"login"`
	Fio          string `json:"fio"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	IsActive     bool   `json:"is_active"`

	types.BaseEntity
}
