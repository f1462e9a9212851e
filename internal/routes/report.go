package routes

import (
	"github.com/labstack/echo/v4"

	"service-hub/internal/controllers"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController) {
	secureGroup.GET("/reports/acts", reportCtrl.GetActReport)
}
