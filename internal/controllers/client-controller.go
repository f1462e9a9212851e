package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/services"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

type ClientController struct {
	clientService services.ClientServiceInterface
	logger        *zap.Logger
}

func NewClientController(clientService services.ClientServiceInterface, logger *zap.Logger) *ClientController {
	return &ClientController{
		clientService: clientService,
		logger:        logger,
	}
}

func (ctrl *ClientController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *ClientController) AddClient(c echo.Context) error {
	var payload dto.CreateClientDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("AddClient: ошибка привязки данных", zap.Error(err))
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Неверный формат данных клиента", err, nil))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	client, err := ctrl.clientService.AddClient(c.Request().Context(), payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, client, "Клиент добавлен", http.StatusCreated)
}

// SearchClients — подсказки по клиентам для формы приёмки: ?q=строка.
func (ctrl *ClientController) SearchClients(c echo.Context) error {
	search := strings.TrimSpace(c.QueryParam("q"))

	clients, err := ctrl.clientService.SearchClients(c.Request().Context(), search)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, clients, "Список клиентов получен", http.StatusOK)
}

func (ctrl *ClientController) DeleteClient(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	clientID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewHttpError(http.StatusBadRequest,
			"Некорректный идентификатор клиента", err, nil))
	}

	if err := ctrl.clientService.DeleteClient(c.Request().Context(), userID, clientID); err != nil {
		return ctrl.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, nil, "Клиент удалён", http.StatusOK)
}
