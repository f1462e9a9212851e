package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"service-hub/internal/dto"
	"service-hub/pkg/constants"
	apperrors "service-hub/pkg/errors"
	"service-hub/pkg/utils"
)

const equipmentTable = "received_equipment"

type dbEquipment struct {
	ID                uint64
	ActID             uint64
	ActNumber         string
	ModelID           uint64
	ModelName         string
	BrandName         string
	CategoryName      string
	SerialNumber      string
	InventoryNumber   sql.NullString
	DefectDescription sql.NullString
	GuaranteeType     string
	SpecialistID      sql.NullInt64
	Status            string
	Priority          int
	CreatedAt         time.Time
}

func (db *dbEquipment) ToDTO() dto.ActEquipmentDTO {
	return dto.ActEquipmentDTO{
		ID:                db.ID,
		ActID:             db.ActID,
		ActNumber:         db.ActNumber,
		ModelID:           db.ModelID,
		ModelFullName:     fmt.Sprintf("%s %s %s", db.CategoryName, db.BrandName, db.ModelName),
		SerialNumber:      db.SerialNumber,
		InventoryNumber:   utils.NullStringToString(db.InventoryNumber),
		DefectDescription: utils.NullStringToString(db.DefectDescription),
		GuaranteeType:     db.GuaranteeType,
		SpecialistID:      utils.NullInt64ToPtr(db.SpecialistID),
		Status:            db.Status,
		Priority:          db.Priority,
		CreatedAt:         db.CreatedAt.Local().Format("2006-01-02 15:04:05"),
	}
}

// equipmentJoinSelect — общая часть выборок оборудования с названием модели.
const equipmentJoinSelect = `
	SELECT e.id, e.act_id, a.act_number, e.model_id, m.name, b.name, c.name,
	       e.serial_number, e.inventory_number, e.defect_description,
	       e.guarantee_type, e.specialist_id, e.status, e.priority, e.created_at
	FROM received_equipment e
	JOIN reception_acts a ON a.id = e.act_id
	JOIN equipment_models m ON m.id = e.model_id
	JOIN brands b ON b.id = m.brand_id
	JOIN equipment_categories c ON c.id = m.category_id`

type EquipmentRepositoryInterface interface {
	CreateEquipment(ctx context.Context, q Querier, actID uint64, line dto.EquipmentLineDTO) (uint64, error)
	FindEquipmentByID(ctx context.Context, id uint64) (*dto.ActEquipmentDTO, error)
	GetEquipmentByAct(ctx context.Context, actID uint64) ([]dto.ActEquipmentDTO, error)
	GetEquipmentByStatus(ctx context.Context, status string) ([]dto.ActEquipmentDTO, error)
	GetEquipmentInService(ctx context.Context) ([]dto.CoordinatorItemDTO, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
	UpdatePriority(ctx context.Context, id uint64, priority int) error
	UpdateGuarantee(ctx context.Context, id uint64, guaranteeType string) error
	AssignSpecialist(ctx context.Context, id uint64, userRoleID uint64) error
}

type equipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage, logger: logger}
}

// CreateEquipment создаёт строку оборудования по акту. Статус и приоритет
// при приёмке всегда стартовые, что бы ни пришло в строке заявки.
func (r *equipmentRepository) CreateEquipment(ctx context.Context, q Querier, actID uint64, line dto.EquipmentLineDTO) (uint64, error) {
	serial := line.SerialNumber
	if serial == "" {
		serial = "---"
	}
	guarantee := line.GuaranteeType
	if guarantee == "" {
		guarantee = constants.GuaranteeNone
	}

	query := `
		INSERT INTO received_equipment
			(act_id, model_id, serial_number, inventory_number, defect_description, guarantee_type, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
		RETURNING id`

	var id uint64
	err := q.QueryRow(ctx, query, actID, *line.ModelID, serial,
		line.InventoryNumber, line.DefectDescription, guarantee, constants.StatusWaiting).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, apperrors.ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

func (r *equipmentRepository) FindEquipmentByID(ctx context.Context, id uint64) (*dto.ActEquipmentDTO, error) {
	query := equipmentJoinSelect + " WHERE e.id = $1"
	var dbRow dbEquipment
	err := r.storage.QueryRow(ctx, query, id).Scan(
		&dbRow.ID, &dbRow.ActID, &dbRow.ActNumber, &dbRow.ModelID, &dbRow.ModelName,
		&dbRow.BrandName, &dbRow.CategoryName, &dbRow.SerialNumber, &dbRow.InventoryNumber,
		&dbRow.DefectDescription, &dbRow.GuaranteeType, &dbRow.SpecialistID,
		&dbRow.Status, &dbRow.Priority, &dbRow.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	equipmentDTO := dbRow.ToDTO()
	return &equipmentDTO, nil
}

func (r *equipmentRepository) queryEquipment(ctx context.Context, query string, args ...interface{}) ([]dto.ActEquipmentDTO, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.ActEquipmentDTO, 0)
	for rows.Next() {
		var dbRow dbEquipment
		if err := rows.Scan(
			&dbRow.ID, &dbRow.ActID, &dbRow.ActNumber, &dbRow.ModelID, &dbRow.ModelName,
			&dbRow.BrandName, &dbRow.CategoryName, &dbRow.SerialNumber, &dbRow.InventoryNumber,
			&dbRow.DefectDescription, &dbRow.GuaranteeType, &dbRow.SpecialistID,
			&dbRow.Status, &dbRow.Priority, &dbRow.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, dbRow.ToDTO())
	}
	return items, rows.Err()
}

func (r *equipmentRepository) GetEquipmentByAct(ctx context.Context, actID uint64) ([]dto.ActEquipmentDTO, error) {
	return r.queryEquipment(ctx, equipmentJoinSelect+" WHERE e.act_id = $1 ORDER BY e.id", actID)
}

func (r *equipmentRepository) GetEquipmentByStatus(ctx context.Context, status string) ([]dto.ActEquipmentDTO, error) {
	query := equipmentJoinSelect + " WHERE e.status = $1 ORDER BY e.priority DESC, e.created_at"
	return r.queryEquipment(ctx, query, status)
}

// GetEquipmentInService — всё оборудование, ещё не выданное клиенту,
// от самого старого к новому (для очереди координатора).
func (r *equipmentRepository) GetEquipmentInService(ctx context.Context) ([]dto.CoordinatorItemDTO, error) {
	query := `
		SELECT e.id, e.act_id, a.act_number, e.model_id, m.name, b.name, c.name,
		       e.serial_number, e.inventory_number, e.defect_description,
		       e.guarantee_type, e.specialist_id, e.status, e.priority, e.created_at,
		       cl.short_name
		FROM received_equipment e
		JOIN reception_acts a ON a.id = e.act_id
		JOIN clients cl ON cl.id = a.client_id
		JOIN equipment_models m ON m.id = e.model_id
		JOIN brands b ON b.id = m.brand_id
		JOIN equipment_categories c ON c.id = m.category_id
		WHERE e.status <> $1
		ORDER BY e.created_at`

	rows, err := r.storage.Query(ctx, query, constants.StatusIssued)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.CoordinatorItemDTO, 0)
	for rows.Next() {
		var dbRow dbEquipment
		var clientName string
		if err := rows.Scan(
			&dbRow.ID, &dbRow.ActID, &dbRow.ActNumber, &dbRow.ModelID, &dbRow.ModelName,
			&dbRow.BrandName, &dbRow.CategoryName, &dbRow.SerialNumber, &dbRow.InventoryNumber,
			&dbRow.DefectDescription, &dbRow.GuaranteeType, &dbRow.SpecialistID,
			&dbRow.Status, &dbRow.Priority, &dbRow.CreatedAt, &clientName); err != nil {
			return nil, err
		}
		item := dto.CoordinatorItemDTO{
			ActEquipmentDTO: dbRow.ToDTO(),
			ClientName:      clientName,
		}
		// Количество полных суток с момента приёмки.
		item.DaysInService = int(time.Since(dbRow.CreatedAt).Hours() / 24)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *equipmentRepository) updateField(ctx context.Context, id uint64, field string, value interface{}) error {
	query := fmt.Sprintf("UPDATE %s SET %s = $1, updated_at = NOW() WHERE id = $2", equipmentTable, field)
	result, err := r.storage.Exec(ctx, query, value, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrNotFound
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) UpdateStatus(ctx context.Context, id uint64, status string) error {
	return r.updateField(ctx, id, "status", status)
}

func (r *equipmentRepository) UpdatePriority(ctx context.Context, id uint64, priority int) error {
	return r.updateField(ctx, id, "priority", priority)
}

func (r *equipmentRepository) UpdateGuarantee(ctx context.Context, id uint64, guaranteeType string) error {
	return r.updateField(ctx, id, "guarantee_type", guaranteeType)
}

func (r *equipmentRepository) AssignSpecialist(ctx context.Context, id uint64, userRoleID uint64) error {
	return r.updateField(ctx, id, "specialist_id", userRoleID)
}
