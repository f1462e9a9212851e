package dto

import "github.com/aarondl/null/v8"

type CreateCategoryDTO struct {
	Name        string      `json:"name" validate:"required,max=200"`
	Description null.String `json:"description" validate:"omitempty"`
	Department  string      `json:"department" validate:"omitempty,department"`
}

type CategoryDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Department  string `json:"department"`
}

type CreateBrandDTO struct {
	Name        string      `json:"name" validate:"required,max=100"`
	CategoryID  uint64      `json:"category_id" validate:"required"`
	Description null.String `json:"description" validate:"omitempty"`
}

type BrandDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	CategoryID  uint64 `json:"category_id"`
	Description string `json:"description,omitempty"`
}

type CreateModelDTO struct {
	Name        string      `json:"name" validate:"required,max=200"`
	BrandID     uint64      `json:"brand_id" validate:"required"`
	Description null.String `json:"description" validate:"omitempty"`
}

type ModelDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	BrandID     uint64 `json:"brand_id"`
	CategoryID  uint64 `json:"category_id"`
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
}
