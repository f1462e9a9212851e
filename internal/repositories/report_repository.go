package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-hub/internal/entities"
	"service-hub/pkg/constants"
)

type ReportRepositoryInterface interface {
	GetActReport(ctx context.Context, filter entities.ActReportFilter) ([]entities.ActReportItem, uint64, error)
}

type reportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{storage: storage}
}

// GetActReport собирает отчёт по актам приёмки за период: клиент,
// приёмщик, количество принятого и уже выданного оборудования.
func (r *reportRepository) GetActReport(ctx context.Context, filter entities.ActReportFilter) ([]entities.ActReportItem, uint64, error) {
	applyFilter := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.DateFrom != nil {
			b = b.Where(sq.GtOrEq{"a.created_at": *filter.DateFrom})
		}
		if filter.DateTo != nil {
			b = b.Where(sq.Lt{"a.created_at": *filter.DateTo})
		}
		if filter.ClientID != nil {
			b = b.Where(sq.Eq{"a.client_id": *filter.ClientID})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(
		sq.Select("COUNT(*)").From("reception_acts a").PlaceholderFormat(sq.Dollar),
	).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.ActReportItem{}, 0, nil
	}

	builder := applyFilter(sq.Select(
		"a.id", "a.act_number", "a.created_at",
		"c.short_name", "c.full_name", "c.contact_person",
		"u.fio",
		"COUNT(e.id)",
		"COUNT(e.id) FILTER (WHERE e.status = '"+constants.StatusIssued+"')",
		"a.printed_at",
	).
		From("reception_acts a").
		Join("clients c ON c.id = a.client_id").
		Join("users u ON u.id = a.receiver_id").
		LeftJoin("received_equipment e ON e.act_id = a.id").
		GroupBy("a.id", "a.act_number", "a.created_at", "c.short_name", "c.full_name", "c.contact_person", "u.fio", "a.printed_at").
		OrderBy("a.created_at DESC").
		PlaceholderFormat(sq.Dollar))

	if filter.PerPage > 0 {
		builder = builder.Limit(uint64(filter.PerPage))
		if filter.Page > 1 {
			builder = builder.Offset(uint64((filter.Page - 1) * filter.PerPage))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]entities.ActReportItem, 0)
	for rows.Next() {
		var item entities.ActReportItem
		if err := rows.Scan(&item.ActID, &item.ActNumber, &item.CreatedAt,
			&item.ClientShortName, &item.ClientFullName, &item.ContactPerson,
			&item.ReceiverFio, &item.EquipmentCount, &item.IssuedCount, &item.PrintedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}
