package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotYetValid     = fmt.Errorf("токен ещё не активен")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")
	ErrTokenIsNotRefresh    = fmt.Errorf("токен не является refresh-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверные учётные данные")
	ErrUnauthorized       = fmt.Errorf("неавторизован")
	ErrForbidden          = fmt.Errorf("доступ запрещён")

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID не найден в контексте запроса")

	// Общие
	ErrNotFound       = fmt.Errorf("запись не найдена")
	ErrBadRequest     = fmt.Errorf("неверный запрос")
	ErrConflict       = fmt.Errorf("запись с такими данными уже существует")
	ErrInternalServer = fmt.Errorf("внутренняя ошибка сервера")

	// Доменные
	ErrUserNotFound       = fmt.Errorf("пользователь не найден")
	ErrClientHasActs      = fmt.Errorf("нельзя удалить клиента: на него оформлены акты приёмки")
	ErrModelInUse         = fmt.Errorf("нельзя удалить модель: по ней принято оборудование")
	ErrActWithoutItems    = fmt.Errorf("акт приёмки без оборудования недействителен")
	ErrEquipmentIssued    = fmt.Errorf("оборудование уже выдано клиенту, статус изменить нельзя")
	ErrBackwardTransition = fmt.Errorf("статус можно переводить только вперёд по циклу ремонта")
)

// HttpError несёт HTTP-код и сообщение для пользователя, а исходную ошибку
// и детали оставляет для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// StatusCodeFor сопоставляет известным ошибкам HTTP-статус.
// Неизвестные ошибки считаются внутренними (500).
func StatusCodeFor(err error) int {
	switch err {
	case ErrNotFound, ErrUserNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrForbidden:
		return http.StatusForbidden
	case ErrUnauthorized, ErrInvalidCredentials, ErrEmptyAuthHeader, ErrInvalidAuthHeader,
		ErrInvalidToken, ErrTokenExpired, ErrTokenNotYetValid, ErrTokenIsNotAccess, ErrTokenIsNotRefresh:
		return http.StatusUnauthorized
	case ErrBadRequest, ErrActWithoutItems, ErrEquipmentIssued, ErrBackwardTransition:
		return http.StatusBadRequest
	case ErrClientHasActs, ErrModelInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
