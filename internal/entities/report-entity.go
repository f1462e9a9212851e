package entities

import (
	"database/sql"
	"time"
)

// ActReportFilter — параметры отчёта по актам приёмки.
type ActReportFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	ClientID *uint64
	Page     int
	PerPage  int
}

// ActReportItem — строка отчёта, как она читается из БД.
type ActReportItem struct {
	ActID           uint64
	ActNumber       string
	CreatedAt       time.Time
	ClientShortName string
	ClientFullName  sql.NullString
	ContactPerson   sql.NullString
	ReceiverFio     string
	EquipmentCount  int64
	IssuedCount     int64
	PrintedAt       sql.NullTime
}
