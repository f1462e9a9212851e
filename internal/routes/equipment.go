package routes

import (
	"github.com/labstack/echo/v4"

	"service-hub/internal/controllers"
)

func runEquipmentRouter(secureGroup *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	secureGroup.POST("/update-equipment-status", equipmentCtrl.UpdateStatus)
	secureGroup.POST("/update-equipment-priority", equipmentCtrl.UpdatePriority)
	secureGroup.POST("/update-equipment-guarantee", equipmentCtrl.UpdateGuarantee)
	secureGroup.POST("/assign-equipment-specialist", equipmentCtrl.AssignSpecialist)
}
