package routes

import (
	"github.com/labstack/echo/v4"

	"service-hub/internal/controllers"
	"service-hub/pkg/middleware"
)

func runAuthRouter(api *echo.Group, authCtrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/refresh", authCtrl.RefreshToken)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me, authMW.Auth)
		authGroup.GET("/roles", authCtrl.Roles, authMW.Auth)
	}
}
