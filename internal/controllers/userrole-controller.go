package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/services"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

type UserRoleController struct {
	userRoleService services.UserRoleServiceInterface
	logger          *zap.Logger
}

func NewUserRoleController(userRoleService services.UserRoleServiceInterface, logger *zap.Logger) *UserRoleController {
	return &UserRoleController{
		userRoleService: userRoleService,
		logger:          logger,
	}
}

func (ctrl *UserRoleController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *UserRoleController) GetRoles(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	roles, err := ctrl.userRoleService.GetRoles(c.Request().Context(), userID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, roles, "Список ролей получен", http.StatusOK)
}

func (ctrl *UserRoleController) AssignRole(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	var payload dto.AssignRoleDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("AssignRole: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Неверный формат данных запроса", err, nil))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	userRole, err := ctrl.userRoleService.AssignRole(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, userRole, "Роль назначена", http.StatusCreated)
}

func (ctrl *UserRoleController) DeactivateUserRole(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	var payload dto.DeactivateUserRoleDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("DeactivateUserRole: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Неверный формат данных запроса", err, nil))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	userRole, err := ctrl.userRoleService.DeactivateUserRole(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, userRole, "Роль деактивирована", http.StatusOK)
}
