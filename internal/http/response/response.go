// Package response задаёт единый конверт JSON-ответов HTTP-обработчиков.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response — конверт ответа: Status всегда, Error при неуспехе, Data при успехе.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// OKWithData оборачивает данные успешного ответа.
func OKWithData(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// Error оборачивает сообщение об ошибке.
func Error(msg string) Response {
	return Response{Status: StatusError, Error: msg}
}

// ValidationError склеивает нарушения валидации в одно сообщение через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		msgs = append(msgs, describe(fe))
	}
	return Error(strings.Join(msgs, ", "))
}

func describe(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", fe.Field())
	case "gt":
		return fmt.Sprintf("field %s must be greater than %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field %s is not a valid", fe.Field())
	}
}
