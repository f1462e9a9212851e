package services

import (
	"context"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/internal/entities"
	"service-hub/internal/repositories"
	"service-hub/pkg/constants"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

type ReportServiceInterface interface {
	GetActReport(ctx context.Context, userID uint64, filter entities.ActReportFilter) ([]dto.ActReportItemDTO, uint64, error)
	GenerateActReportXLSX(ctx context.Context, userID uint64, filter entities.ActReportFilter) (*excelize.File, error)
}

type ReportService struct {
	reportRepo  repositories.ReportRepositoryInterface
	roleService AuthRoleServiceInterface
	logger      *zap.Logger
}

func NewReportService(
	reportRepo repositories.ReportRepositoryInterface,
	roleService AuthRoleServiceInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		reportRepo:  reportRepo,
		roleService: roleService,
		logger:      logger,
	}
}

func toActReportItemDTO(item entities.ActReportItem) dto.ActReportItemDTO {
	return dto.ActReportItemDTO{
		ActID:           item.ActID,
		ActNumber:       item.ActNumber,
		CreatedAt:       item.CreatedAt.Local().Format("2006-01-02 15:04:05"),
		ClientShortName: item.ClientShortName,
		ClientFullName:  utils.NullStringToString(item.ClientFullName),
		ContactPerson:   utils.NullStringToString(item.ContactPerson),
		ReceiverFio:     item.ReceiverFio,
		EquipmentCount:  item.EquipmentCount,
		IssuedCount:     item.IssuedCount,
		PrintedAt:       utils.NullTimeToEmptyString(item.PrintedAt),
	}
}

func (s *ReportService) GetActReport(ctx context.Context, userID uint64, filter entities.ActReportFilter) ([]dto.ActReportItemDTO, uint64, error) {
	if err := s.roleService.RequireAnyRole(ctx, userID, constants.RoleCoordinator, constants.RoleAdmin); err != nil {
		return nil, 0, err
	}

	items, total, err := s.reportRepo.GetActReport(ctx, filter)
	if err != nil {
		s.logger.Error("ReportService: Ошибка формирования отчёта по актам", zap.Error(err))
		return nil, 0, apperrors.ErrInternalServer
	}

	result := make([]dto.ActReportItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, toActReportItemDTO(item))
	}
	return result, total, nil
}

var actReportHeaders = []string{
	"№", "Номер акта", "Дата приёмки", "Клиент", "Полное наименование",
	"Контактное лицо", "Приёмщик", "Принято, шт", "Выдано, шт",
}

// GenerateActReportXLSX выгружает отчёт по актам в Excel-файл.
// Пагинация фильтра игнорируется: в файл попадает весь период.
func (s *ReportService) GenerateActReportXLSX(ctx context.Context, userID uint64, filter entities.ActReportFilter) (*excelize.File, error) {
	filter.Page = 0
	filter.PerPage = 0

	items, _, err := s.GetActReport(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	sheet := "Отчёт по актам"
	file.SetSheetName("Sheet1", sheet)
	file.SetSheetRow(sheet, "A1", &actReportHeaders)
	style, _ := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	file.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			i + 1, item.ActNumber, item.CreatedAt, item.ClientShortName, item.ClientFullName,
			item.ContactPerson, item.ReceiverFio, item.EquipmentCount, item.IssuedCount,
		}
		file.SetSheetRow(sheet, cell, &row)
	}
	file.SetColWidth(sheet, "B", "C", 20)
	file.SetColWidth(sheet, "D", "D", 25)
	file.SetColWidth(sheet, "E", "E", 40)
	file.SetColWidth(sheet, "F", "G", 25)

	s.logger.Info("ReportService: Сформирован Excel-отчёт по актам",
		zap.Int("rows", len(items)), zap.Uint64("userID", userID))
	return file, nil
}
