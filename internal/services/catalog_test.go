package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/repositories"
	apperrors "service-hub/pkg/errors"
)

type stubCategoryRepo struct {
	categories map[uint64]*dto.CategoryDTO
	nextID     uint64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint64]*dto.CategoryDTO)}
}

func (r *stubCategoryRepo) GetCategories(_ context.Context) ([]dto.CategoryDTO, error) {
	result := make([]dto.CategoryDTO, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, *c)
	}
	return result, nil
}

func (r *stubCategoryRepo) FindCategoryByID(_ context.Context, id uint64) (*dto.CategoryDTO, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubCategoryRepo) CreateCategory(_ context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	r.nextID++
	c := &dto.CategoryDTO{ID: r.nextID, Name: payload.Name, Department: payload.Department}
	r.categories[c.ID] = c
	return c, nil
}

type stubBrandRepo struct {
	brands map[uint64]*dto.BrandDTO
	nextID uint64
}

func newStubBrandRepo() *stubBrandRepo {
	return &stubBrandRepo{brands: make(map[uint64]*dto.BrandDTO)}
}

func (r *stubBrandRepo) GetBrandsByCategory(_ context.Context, categoryID uint64) ([]dto.BrandDTO, error) {
	result := make([]dto.BrandDTO, 0)
	for _, b := range r.brands {
		if b.CategoryID == categoryID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (r *stubBrandRepo) FindBrandByID(_ context.Context, id uint64) (*dto.BrandDTO, error) {
	b, ok := r.brands[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return b, nil
}

func (r *stubBrandRepo) ExistsByNameAndCategory(_ context.Context, name string, categoryID uint64) (bool, error) {
	for _, b := range r.brands {
		if b.Name == name && b.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubBrandRepo) CreateBrand(_ context.Context, payload dto.CreateBrandDTO) (*dto.BrandDTO, error) {
	r.nextID++
	b := &dto.BrandDTO{ID: r.nextID, Name: payload.Name, CategoryID: payload.CategoryID}
	r.brands[b.ID] = b
	return b, nil
}

type stubModelRepo struct {
	models map[uint64]*dto.ModelDTO
	nextID uint64
}

func newStubModelRepo() *stubModelRepo {
	return &stubModelRepo{models: make(map[uint64]*dto.ModelDTO)}
}

func (r *stubModelRepo) GetModelsByBrand(_ context.Context, brandID uint64) ([]dto.ModelDTO, error) {
	result := make([]dto.ModelDTO, 0)
	for _, m := range r.models {
		if m.BrandID == brandID {
			result = append(result, *m)
		}
	}
	return result, nil
}

func (r *stubModelRepo) FindModelByID(_ context.Context, _ repositories.Querier, id uint64) (*dto.ModelDTO, error) {
	m, ok := r.models[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return m, nil
}

func (r *stubModelRepo) ExistsByNameAndBrand(_ context.Context, name string, brandID uint64) (bool, error) {
	for _, m := range r.models {
		if m.Name == name && m.BrandID == brandID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubModelRepo) CreateModel(_ context.Context, payload dto.CreateModelDTO, categoryID uint64) (*dto.ModelDTO, error) {
	r.nextID++
	m := &dto.ModelDTO{ID: r.nextID, Name: payload.Name, BrandID: payload.BrandID, CategoryID: categoryID}
	r.models[m.ID] = m
	return m, nil
}

func newCatalogServiceForTest() (CatalogServiceInterface, *stubCategoryRepo, *stubBrandRepo, *stubModelRepo) {
	categoryRepo := newStubCategoryRepo()
	brandRepo := newStubBrandRepo()
	modelRepo := newStubModelRepo()
	svc := NewCatalogService(categoryRepo, brandRepo, modelRepo, zap.NewNop())
	return svc, categoryRepo, brandRepo, modelRepo
}

func TestCatalogService_AddBrand_DuplicateRejected(t *testing.T) {
	svc, categoryRepo, brandRepo, _ := newCatalogServiceForTest()
	category, err := categoryRepo.CreateCategory(context.Background(), dto.CreateCategoryDTO{Name: "Перфоратор"})
	require.NoError(t, err)

	_, err = svc.AddBrand(context.Background(), dto.CreateBrandDTO{Name: "Makita", CategoryID: category.ID})
	require.NoError(t, err)

	_, err = svc.AddBrand(context.Background(), dto.CreateBrandDTO{Name: "Makita", CategoryID: category.ID})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Len(t, brandRepo.brands, 1)
}

func TestCatalogService_AddBrand_SameNameOtherCategory(t *testing.T) {
	svc, categoryRepo, _, _ := newCatalogServiceForTest()
	first, err := categoryRepo.CreateCategory(context.Background(), dto.CreateCategoryDTO{Name: "Перфоратор"})
	require.NoError(t, err)
	second, err := categoryRepo.CreateCategory(context.Background(), dto.CreateCategoryDTO{Name: "Шуруповёрт"})
	require.NoError(t, err)

	_, err = svc.AddBrand(context.Background(), dto.CreateBrandDTO{Name: "Makita", CategoryID: first.ID})
	require.NoError(t, err)

	// Уникальность действует в пределах категории.
	_, err = svc.AddBrand(context.Background(), dto.CreateBrandDTO{Name: "Makita", CategoryID: second.ID})
	assert.NoError(t, err)
}

func TestCatalogService_AddBrand_UnknownCategory(t *testing.T) {
	svc, _, _, _ := newCatalogServiceForTest()

	_, err := svc.AddBrand(context.Background(), dto.CreateBrandDTO{Name: "Makita", CategoryID: 42})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogService_AddModel_InheritsBrandCategory(t *testing.T) {
	svc, categoryRepo, _, _ := newCatalogServiceForTest()
	category, err := categoryRepo.CreateCategory(context.Background(), dto.CreateCategoryDTO{Name: "Перфоратор"})
	require.NoError(t, err)
	brand, err := svc.AddBrand(context.Background(), dto.CreateBrandDTO{Name: "Makita", CategoryID: category.ID})
	require.NoError(t, err)

	model, err := svc.AddModel(context.Background(), dto.CreateModelDTO{Name: "HR2470", BrandID: brand.ID})
	require.NoError(t, err)
	assert.Equal(t, category.ID, model.CategoryID)

	_, err = svc.AddModel(context.Background(), dto.CreateModelDTO{Name: "HR2470", BrandID: brand.ID})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCatalogService_AddCategory_DuplicateRejected(t *testing.T) {
	svc, _, _, _ := newCatalogServiceForTest()

	_, err := svc.AddCategory(context.Background(), dto.CreateCategoryDTO{Name: "Перфоратор"})
	require.NoError(t, err)

	_, err = svc.AddCategory(context.Background(), dto.CreateCategoryDTO{Name: "Перфоратор"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
