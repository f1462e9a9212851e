package constants

// Роли системы. Имена совпадают со справочником roles в БД.
const (
	RoleReceiver    = "Приёмщик"
	RoleCoordinator = "Координатор"
	RoleSpecialist  = "Специалист"
	RoleAdmin       = "Администратор"
)

// Цеха обслуживания для категорий оборудования.
const (
	DepartmentNone     = "NONE"
	DepartmentMotor    = "MOTOR"
	DepartmentElectro  = "ELECTRO"
	DepartmentSmall    = "SMALL"
	DepartmentElectron = "ELECTRON"
)

var Departments = []string{
	DepartmentNone,
	DepartmentMotor,
	DepartmentElectro,
	DepartmentSmall,
	DepartmentElectron,
}

// Типы гарантии принятого оборудования.
const (
	GuaranteeNone    = "NONE"
	GuaranteeFactory = "FACTORY"
	GuaranteeService = "SERVICE"
)

var GuaranteeTypes = []string{
	GuaranteeNone,
	GuaranteeFactory,
	GuaranteeService,
}

// Допустимые значения приоритета для эндпоинта обновления.
// Само поле в БД ограничено диапазоном 0-100.
var AllowedPriorities = []int{0, 1, 3}
