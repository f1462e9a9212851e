package constants

// Статусы оборудования в порядке прохождения цикла ремонта.
const (
	StatusWaiting   = "WAITING"   // Ожидает распределения
	StatusAssigned  = "ASSIGNED"  // Назначено специалисту
	StatusDiagnosis = "DIAGNOSIS" // На диагностике
	StatusDiagnosed = "DIAGNOSED" // Диагностировано
	StatusApproval  = "APPROVAL"  // Согласование стоимости
	StatusParts     = "PARTS"     // Ожидает запчастей
	StatusRepair    = "REPAIR"    // В ремонте
	StatusTesting   = "TESTING"   // На испытаниях
	StatusReady     = "READY"     // Готово к выдаче
	StatusIssued    = "ISSUED"    // Выдано
)

// EquipmentStatusOrder задаёт прямой порядок статусов.
// Перевод статуса разрешён только вперёд по этому списку.
var EquipmentStatusOrder = []string{
	StatusWaiting,
	StatusAssigned,
	StatusDiagnosis,
	StatusDiagnosed,
	StatusApproval,
	StatusParts,
	StatusRepair,
	StatusTesting,
	StatusReady,
	StatusIssued,
}

var equipmentStatusRank = func() map[string]int {
	m := make(map[string]int, len(EquipmentStatusOrder))
	for i, s := range EquipmentStatusOrder {
		m[s] = i
	}
	return m
}()

// EquipmentStatusRank возвращает позицию статуса в цикле ремонта
// и false, если статус неизвестен.
func EquipmentStatusRank(status string) (int, bool) {
	rank, ok := equipmentStatusRank[status]
	return rank, ok
}
