package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/services"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

type ReceptionController struct {
	receptionService services.ReceptionServiceInterface
	logger           *zap.Logger
}

func NewReceptionController(receptionService services.ReceptionServiceInterface, logger *zap.Logger) *ReceptionController {
	return &ReceptionController{
		receptionService: receptionService,
		logger:           logger,
	}
}

func (ctrl *ReceptionController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *ReceptionController) CreateAct(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	var payload dto.CreateReceptionActDTO
	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("CreateAct: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Неверный формат заявки на приёмку", err, nil))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	created, err := ctrl.receptionService.CreateReceptionAct(c.Request().Context(), userID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, created, "Акт приёмки оформлен", http.StatusCreated)
}

func (ctrl *ReceptionController) GetActDetail(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	actID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Некорректный идентификатор акта", err, nil))
	}

	detail, err := ctrl.receptionService.GetActDetail(c.Request().Context(), userID, actID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, detail, "Акт приёмки получен", http.StatusOK)
}

func (ctrl *ReceptionController) DeleteAct(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	actID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Некорректный идентификатор акта", err, nil))
	}

	if err := ctrl.receptionService.DeleteAct(c.Request().Context(), userID, actID); err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, nil, "Акт приёмки удалён", http.StatusOK)
}
