package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skyward/opsportal/internal/constants"
)

// ServiceError is returned by every business service. Code is one of the
// constants.ErrCode* values and decides the HTTP status.
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// AsServiceError unwraps err into a *ServiceError
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func validationError(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Code: constants.ErrCodeValidationFailed, Message: fmt.Sprintf(format, args...)}
}

func notFoundError(what string) *ServiceError {
	return &ServiceError{Code: constants.ErrCodeNotFound, Message: what + " not found"}
}

func conflictError(format string, args ...interface{}) *ServiceError {
	return &ServiceError{Code: constants.ErrCodeConflict, Message: fmt.Sprintf(format, args...)}
}

// dbError wraps a persistence failure. Unique violations become conflicts.
func dbError(err error) *ServiceError {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ServiceError{
			Code:    constants.ErrCodeConflict,
			Message: constants.GetErrorMessage(constants.ErrCodeConflict),
			Err:     err,
		}
	}
	return &ServiceError{
		Code:    constants.ErrCodeDatabase,
		Message: constants.GetErrorMessage(constants.ErrCodeDatabase),
		Err:     err,
	}
}
