package seeders

import "service-hub/pkg/constants"

type roleSeed struct {
	Name        string
	Description string
}

var rolesData = []roleSeed{
	{constants.RoleReceiver, "Оформляет акты приёмки и выдаёт готовое оборудование"},
	{constants.RoleCoordinator, "Распределяет оборудование и ведёт цикл ремонта"},
	{constants.RoleSpecialist, "Выполняет диагностику и ремонт"},
	{constants.RoleAdmin, "Управляет пользователями и назначением ролей"},
}

type categorySeed struct {
	Name       string
	Department string
	Brands     map[string][]string
}

// Демонстрационный каскад «категория → бренды → модели».
var catalogData = []categorySeed{
	{
		Name:       "Электродвигатель",
		Department: constants.DepartmentMotor,
		Brands: map[string][]string{
			"АИР":     {"АИР71А2", "АИР80В4", "АИР100S4"},
			"Siemens": {"1LA7 096-4AA10"},
		},
	},
	{
		Name:       "Сварочный аппарат",
		Department: constants.DepartmentElectro,
		Brands: map[string][]string{
			"Ресанта": {"САИ-190", "САИ-250"},
			"ESAB":    {"Buddy Arc 180"},
		},
	},
	{
		Name:       "Перфоратор",
		Department: constants.DepartmentSmall,
		Brands: map[string][]string{
			"Makita": {"HR2470", "HR2630"},
			"Bosch":  {"GBH 2-26 DRE"},
		},
	},
	{
		Name:       "Частотный преобразователь",
		Department: constants.DepartmentElectron,
		Brands: map[string][]string{
			"Danfoss": {"VLT Micro Drive FC 51"},
		},
	},
}
