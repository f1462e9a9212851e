package routes

import (
	"github.com/labstack/echo/v4"

	"service-hub/internal/controllers"
)

// Справочник техники: выборки каскада «категория → бренды → модели»
// и добавление новых позиций прямо из формы приёмки.
func runCatalogRouter(secureGroup *echo.Group, catalogCtrl *controllers.CatalogController) {
	secureGroup.GET("/categories", catalogCtrl.GetCategories)
	secureGroup.GET("/brands", catalogCtrl.GetBrands)
	secureGroup.GET("/models", catalogCtrl.GetModels)

	secureGroup.POST("/add-category", catalogCtrl.AddCategory)
	secureGroup.POST("/add-brand", catalogCtrl.AddBrand)
	secureGroup.POST("/add-model", catalogCtrl.AddModel)
}
