package routes

import (
	"github.com/labstack/echo/v4"

	"service-hub/internal/controllers"
)

func runClientRouter(secureGroup *echo.Group, clientCtrl *controllers.ClientController) {
	secureGroup.POST("/add-client", clientCtrl.AddClient)
	secureGroup.GET("/search-clients", clientCtrl.SearchClients)
	secureGroup.DELETE("/clients/:id", clientCtrl.DeleteClient)
}
