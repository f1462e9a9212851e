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

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		logger:           logger,
	}
}

func (ctrl *EquipmentController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

// bindAndValidate — общая привязка тела запроса для мутаций оборудования.
func (ctrl *EquipmentController) bindAndValidate(c echo.Context, payload interface{}) error {
	if err := c.Bind(payload); err != nil {
		ctrl.logger.Error("EquipmentController: ошибка привязки данных", zap.Error(err))
		return apperrors.NewHttpError(http.StatusBadRequest,
			"Неверный формат данных запроса", err, nil)
	}
	return c.Validate(payload)
}

func (ctrl *EquipmentController) UpdateStatus(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	var payload dto.UpdateEquipmentStatusDTO
	if err := ctrl.bindAndValidate(c, &payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	equipment, err := ctrl.equipmentService.UpdateStatus(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, equipment, "Статус оборудования обновлён", http.StatusOK)
}

func (ctrl *EquipmentController) UpdatePriority(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	var payload dto.UpdateEquipmentPriorityDTO
	if err := ctrl.bindAndValidate(c, &payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	equipment, err := ctrl.equipmentService.UpdatePriority(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, equipment, "Приоритет оборудования обновлён", http.StatusOK)
}

func (ctrl *EquipmentController) UpdateGuarantee(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	var payload dto.UpdateEquipmentGuaranteeDTO
	if err := ctrl.bindAndValidate(c, &payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	equipment, err := ctrl.equipmentService.UpdateGuarantee(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, equipment, "Тип гарантии обновлён", http.StatusOK)
}

func (ctrl *EquipmentController) AssignSpecialist(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	var payload dto.AssignSpecialistDTO
	if err := ctrl.bindAndValidate(c, &payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	equipment, err := ctrl.equipmentService.AssignSpecialist(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, equipment, "Специалист назначен", http.StatusOK)
}
