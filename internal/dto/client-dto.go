package dto

import "github.com/aarondl/null/v8"

type CreateClientDTO struct {
	ShortName     string      `json:"short_name" validate:"required,max=50"`
	FullName      string      `json:"full_name" validate:"required,max=100"`
	ContactPerson string      `json:"contact_person" validate:"required,max=200"`
	Phone         string      `json:"phone" validate:"required,phone_number"`
	Email         null.String `json:"email" validate:"omitempty"`
	Address       null.String `json:"address" validate:"omitempty"`
}

type ClientDTO struct {
	ID            uint64 `json:"id"`
	ShortName     string `json:"short_name"`
	FullName      string `json:"full_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

type ShortClientDTO struct {
	ID            uint64 `json:"id"`
	ShortName     string `json:"short_name"`
	FullName      string `json:"full_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
}
