package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"service-hub/internal/entities"
	"service-hub/internal/services"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

const reportDateLayout = "2006-01-02"

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// parseFilter разбирает query-параметры отчёта:
// date_from, date_to (ГГГГ-ММ-ДД), client_id, page, per_page.
func (ctrl *ReportController) parseFilter(c echo.Context) (entities.ActReportFilter, error) {
	filter := entities.ActReportFilter{Page: 1, PerPage: 50}

	if raw := c.QueryParam("date_from"); raw != "" {
		parsed, err := time.ParseInLocation(reportDateLayout, raw, time.Local)
		if err != nil {
			return filter, apperrors.NewHttpError(http.StatusBadRequest,
				"Некорректная дата date_from, ожидается формат ГГГГ-ММ-ДД", err, nil)
		}
		filter.DateFrom = &parsed
	}
	if raw := c.QueryParam("date_to"); raw != "" {
		parsed, err := time.ParseInLocation(reportDateLayout, raw, time.Local)
		if err != nil {
			return filter, apperrors.NewHttpError(http.StatusBadRequest,
				"Некорректная дата date_to, ожидается формат ГГГГ-ММ-ДД", err, nil)
		}
		// Верхняя граница включает весь указанный день.
		parsed = parsed.AddDate(0, 0, 1)
		filter.DateTo = &parsed
	}
	if raw := c.QueryParam("client_id"); raw != "" {
		clientID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, apperrors.NewHttpError(http.StatusBadRequest,
				"Некорректный параметр client_id", err, nil)
		}
		filter.ClientID = &clientID
	}
	if raw := c.QueryParam("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			filter.Page = page
		}
	}
	if raw := c.QueryParam("per_page"); raw != "" {
		if perPage, err := strconv.Atoi(raw); err == nil && perPage > 0 && perPage <= 200 {
			filter.PerPage = perPage
		}
	}
	return filter, nil
}

// GetActReport отдаёт отчёт по актам приёмки.
// С параметром ?format=xlsx вместо JSON выгружается Excel-файл.
func (ctrl *ReportController) GetActReport(c echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	filter, err := ctrl.parseFilter(c)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	if c.QueryParam("format") == "xlsx" {
		return ctrl.respondWithXLSX(c, userID, filter)
	}

	items, total, err := ctrl.reportService.GetActReport(c.Request().Context(), userID, filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	body := map[string]interface{}{
		"items":    items,
		"total":    total,
		"page":     filter.Page,
		"per_page": filter.PerPage,
	}
	return utils.SuccessResponse(c, body, "Отчёт по актам сформирован", http.StatusOK)
}

func (ctrl *ReportController) respondWithXLSX(c echo.Context, userID uint64, filter entities.ActReportFilter) error {
	file, err := ctrl.reportService.GenerateActReportXLSX(c.Request().Context(), userID, filter)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	fileName := fmt.Sprintf("acts_report_%s.xlsx", time.Now().Format(reportDateLayout))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return file.Write(c.Response().Writer)
}
