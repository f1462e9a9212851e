package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/services"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

// CatalogController обслуживает справочник техники и каскадные выборки
// «категория → бренды → модели» для формы приёмки.
type CatalogController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (ctrl *CatalogController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *CatalogController) queryID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewHttpError(http.StatusBadRequest,
			"Некорректный параметр "+name, err, nil)
	}
	return id, nil
}

func (ctrl *CatalogController) GetCategories(c echo.Context) error {
	categories, err := ctrl.catalogService.GetCategories(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, categories, "Список категорий получен", http.StatusOK)
}

func (ctrl *CatalogController) AddCategory(c echo.Context) error {
	var payload dto.CreateCategoryDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("AddCategory: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Неверный формат данных категории", err, nil))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	category, err := ctrl.catalogService.AddCategory(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, category, "Категория добавлена", http.StatusCreated)
}

func (ctrl *CatalogController) GetBrands(c echo.Context) error {
	categoryID, err := ctrl.queryID(c, "category_id")
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	brands, err := ctrl.catalogService.GetBrandsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, brands, "Список брендов получен", http.StatusOK)
}

func (ctrl *CatalogController) AddBrand(c echo.Context) error {
	var payload dto.CreateBrandDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("AddBrand: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Неверный формат данных бренда", err, nil))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	brand, err := ctrl.catalogService.AddBrand(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, brand, "Бренд добавлен", http.StatusCreated)
}

func (ctrl *CatalogController) GetModels(c echo.Context) error {
	brandID, err := ctrl.queryID(c, "brand_id")
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	models, err := ctrl.catalogService.GetModelsByBrand(c.Request().Context(), brandID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, models, "Список моделей получен", http.StatusOK)
}

func (ctrl *CatalogController) AddModel(c echo.Context) error {
	var payload dto.CreateModelDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("AddModel: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Неверный формат данных модели", err, nil))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	model, err := ctrl.catalogService.AddModel(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, model, "Модель добавлена", http.StatusCreated)
}
