// Файл: pkg/customvalidator/validator.go
package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"service-hub/pkg/constants"
)

// RegisterCustomValidations регистрирует доменные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("phone_number", isPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("guarantee_type", isGuaranteeType); err != nil {
		return err
	}
	if err := v.RegisterValidation("department", isDepartment); err != nil {
		return err
	}
	return nil
}

var phoneRegex = regexp.MustCompile(`^\+?\d[\d\s\-()]{4,18}$`)

func isPhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	_, ok := constants.EquipmentStatusRank(fl.Field().String())
	return ok
}

func isGuaranteeType(fl validator.FieldLevel) bool {
	for _, g := range constants.GuaranteeTypes {
		if fl.Field().String() == g {
			return true
		}
	}
	return false
}

func isDepartment(fl validator.FieldLevel) bool {
	for _, d := range constants.Departments {
		if fl.Field().String() == d {
			return true
		}
	}
	return false
}
