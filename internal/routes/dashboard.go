package routes

import (
	"github.com/labstack/echo/v4"

	"service-hub/internal/controllers"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController) {
	secureGroup.GET("/receiver-dashboard", dashboardCtrl.ReceiverDashboard)
	secureGroup.GET("/coordinator-dashboard", dashboardCtrl.CoordinatorDashboard)
}
