package services

import (
	"context"

	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/repositories"
	apperrors "service-hub/pkg/errors"
)

// CatalogServiceInterface — справочник техники: категории, бренды и
// модели, из которых собираются строки акта приёмки.
type CatalogServiceInterface interface {
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	AddCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	GetBrandsByCategory(ctx context.Context, categoryID uint64) ([]dto.BrandDTO, error)
	AddBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error)
	GetModelsByBrand(ctx context.Context, brandID uint64) ([]dto.ModelDTO, error)
	AddModel(ctx context.Context, payload dto.CreateModelDTO) (*dto.ModelDTO, error)
}

type CatalogService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	brandRepo    repositories.BrandRepositoryInterface
	modelRepo    repositories.ModelRepositoryInterface
	logger       *zap.Logger
}

func NewCatalogService(
	categoryRepo repositories.CategoryRepositoryInterface,
	brandRepo repositories.BrandRepositoryInterface,
	modelRepo repositories.ModelRepositoryInterface,
	logger *zap.Logger,
) CatalogServiceInterface {
	return &CatalogService{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		modelRepo:    modelRepo,
		logger:       logger,
	}
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	return s.categoryRepo.GetCategories(ctx)
}

func (s *CatalogService) AddCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, payload.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflict
	}

	category, err := s.categoryRepo.CreateCategory(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CatalogService: Добавлена категория",
		zap.Uint64("categoryID", category.ID), zap.String("name", category.Name))
	return category, nil
}

func (s *CatalogService) GetBrandsByCategory(ctx context.Context, categoryID uint64) ([]dto.BrandDTO, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.brandRepo.GetBrandsByCategory(ctx, categoryID)
}

func (s *CatalogService) AddBrand(ctx context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, payload.CategoryID); err != nil {
		return nil, err
	}

	exists, err := s.brandRepo.ExistsByNameAndCategory(ctx, payload.Name, payload.CategoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflict
	}

	brand, err := s.brandRepo.CreateBrand(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CatalogService: Добавлен бренд",
		zap.Uint64("brandID", brand.ID), zap.String("name", brand.Name))
	return brand, nil
}

func (s *CatalogService) GetModelsByBrand(ctx context.Context, brandID uint64) ([]dto.ModelDTO, error) {
	if _, err := s.brandRepo.FindBrandByID(ctx, brandID); err != nil {
		return nil, err
	}
	return s.modelRepo.GetModelsByBrand(ctx, brandID)
}

// AddModel создаёт модель; категория берётся с выбранного бренда.
func (s *CatalogService) AddModel(ctx context.Context, payload dto.CreateModelDTO) (*dto.ModelDTO, error) {
	brand, err := s.brandRepo.FindBrandByID(ctx, payload.BrandID)
	if err != nil {
		return nil, err
	}

	exists, err := s.modelRepo.ExistsByNameAndBrand(ctx, payload.Name, payload.BrandID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflict
	}

	model, err := s.modelRepo.CreateModel(ctx, payload, brand.CategoryID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("CatalogService: Добавлена модель",
		zap.Uint64("modelID", model.ID), zap.String("fullName", model.FullName))
	return model, nil
}
