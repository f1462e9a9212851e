package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "service-hub/pkg/errors"
)

// HttpResponse — единый конверт ответа API: {success, message, body}.
type HttpResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Body    interface{} `json:"body,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Success: true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse рендерит ошибку в том же конверте. Пользователю уходит
// только сообщение; исходная ошибка и детали пишутся в лог.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := err.Error()

	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = httpErr.Message
		logger.Error("ошибка запроса",
			zap.Int("code", httpErr.Code),
			zap.String("message", httpErr.Message),
			zap.Error(httpErr.Err),
			zap.Any("details", httpErr.Details),
		)
	} else {
		code = apperrors.StatusCodeFor(err)
		if code == http.StatusInternalServerError {
			message = apperrors.ErrInternalServer.Error()
			logger.Error("внутренняя ошибка", zap.Error(err))
		}
	}

	return ctx.JSON(code, &HttpResponse{
		Success: false,
		Message: message,
	})
}
