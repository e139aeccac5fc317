package apierrors

import (
	"errors"
	"fmt"
)

// ValidationError представляет ошибку валидации входных данных.
// Используется для разделения ошибок валидации (HTTP 400) от серверных ошибок (HTTP 500).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError formats its arguments using format and returns a *ValidationError whose Message field is set to the formatted string.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFoundError представляет ошибку "ресурс не найден".
// Используется для возврата HTTP 404 Not Found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a NotFoundError whose Message is the result of formatting the given format string with the provided args.
func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{
		Message: fmt.Sprintf(format, args...),
	}
}

// Ошибки расчёта. Все синхронные и детерминированные: повтор с теми же
// входными данными и тем же справочником даст ту же ошибку.
var (
	// ErrRulesetNotFound - ни одно правило классификации не подходит к typeId (дыра в таблицах диапазонов).
	ErrRulesetNotFound = errors.New("ruleset not found")
	// ErrItemIncomplete - у позиции не заполнены обязательные поля.
	ErrItemIncomplete = errors.New("item incomplete")
	// ErrMaterialNotFound - неизвестная марка материала.
	ErrMaterialNotFound = errors.New("material not found")
	// ErrPipeFittingNotFound - в справочнике нет подходящей записи.
	ErrPipeFittingNotFound = errors.New("pipe fitting not found")
	// ErrPipeFittingAmbiguous - в справочнике больше одной подходящей записи.
	ErrPipeFittingAmbiguous = errors.New("pipe fitting ambiguous")
	// ErrCalculationConditionNotFound - нет правила расчёта трудозатрат или цены для typeId.
	ErrCalculationConditionNotFound = errors.New("calculation condition not found")
)

// IsFatal сообщает, указывает ли ошибка на пробел в таблицах правил,
// а не на проблему конкретной позиции.
func IsFatal(err error) bool {
	return errors.Is(err, ErrRulesetNotFound) || errors.Is(err, ErrCalculationConditionNotFound)
}

// IsClientError сообщает, вызвана ли ошибка входными данными позиции (HTTP 4xx).
func IsClientError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr) ||
		errors.Is(err, ErrItemIncomplete) ||
		errors.Is(err, ErrMaterialNotFound) ||
		errors.Is(err, ErrPipeFittingNotFound) ||
		errors.Is(err, ErrPipeFittingAmbiguous)
}
