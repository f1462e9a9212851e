package routes

import (
	"github.com/labstack/echo/v4"

	"service-hub/internal/controllers"
)

func runReceptionRouter(secureGroup *echo.Group, receptionCtrl *controllers.ReceptionController) {
	secureGroup.POST("/reception/create", receptionCtrl.CreateAct)
	secureGroup.GET("/reception-act/:id", receptionCtrl.GetActDetail)
	secureGroup.DELETE("/reception-act/:id", receptionCtrl.DeleteAct)
}
