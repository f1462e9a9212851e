package routes

import (
	"github.com/labstack/echo/v4"

	"service-hub/internal/controllers"
)

func runUserRoleRouter(secureGroup *echo.Group, userRoleCtrl *controllers.UserRoleController) {
	secureGroup.GET("/roles", userRoleCtrl.GetRoles)
	secureGroup.POST("/user-roles", userRoleCtrl.AssignRole)
	secureGroup.POST("/deactivate-user-role", userRoleCtrl.DeactivateUserRole)
}
