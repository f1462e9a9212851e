package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-hub/internal/controllers"
	"service-hub/internal/repositories"
	"service-hub/internal/services"
	"service-hub/pkg/config"
	"service-hub/pkg/middleware"
	"service-hub/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)

	// --- 1. РЕПОЗИТОРИИ ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	roleRepo := repositories.NewRoleRepository(dbConn, logger)
	userRoleRepo := repositories.NewUserRoleRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	clientRepo := repositories.NewClientRepository(dbConn, logger)
	categoryRepo := repositories.NewCategoryRepository(dbConn, logger)
	brandRepo := repositories.NewBrandRepository(dbConn, logger)
	modelRepo := repositories.NewModelRepository(dbConn, logger)
	actRepo := repositories.NewActRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn)

	// --- 2. СЕРВИСЫ ---
	roleService := services.NewAuthRoleService(userRepo, cacheRepo, logger, cfg.Auth.RoleCacheTTL)
	authService := services.NewAuthService(userRepo, cacheRepo, roleService, jwtSvc, logger, cfg.Auth)
	receptionService := services.NewReceptionService(txManager, actRepo, equipmentRepo, clientRepo, roleService, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, userRoleRepo, roleService, logger)
	dashboardService := services.NewDashboardService(actRepo, equipmentRepo, roleService, logger)
	clientService := services.NewClientService(clientRepo, roleService, logger)
	catalogService := services.NewCatalogService(categoryRepo, brandRepo, modelRepo, logger)
	userRoleService := services.NewUserRoleService(userRoleRepo, roleRepo, roleService, logger)
	reportService := services.NewReportService(reportRepo, roleService, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	authCtrl := controllers.NewAuthController(authService, logger)
	receptionCtrl := controllers.NewReceptionController(receptionService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	clientCtrl := controllers.NewClientController(clientService, logger)
	catalogCtrl := controllers.NewCatalogController(catalogService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	userRoleCtrl := controllers.NewUserRoleController(userRoleService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- 4. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl, authMW)
	runReceptionRouter(secureGroup, receptionCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runClientRouter(secureGroup, clientCtrl)
	runCatalogRouter(secureGroup, catalogCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runUserRoleRouter(secureGroup, userRoleCtrl)
	runReportRouter(secureGroup, reportCtrl)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
