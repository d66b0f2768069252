package cli

import (
	stderrors "errors"
	"fmt"

	"argus/internal/errors"
	"argus/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if errors.IsAppError(err) || validation.IsValidationError(err) {
		return fmt.Errorf("%s", eh.Message(err))
	}
	return err
}

// Message returns the text shown to the user for err. Field-level validation
// messages win over the wrapping AppError message.
func (eh *ErrorHandler) Message(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// IsRecoverable reports whether the session can continue after err: the
// user can retry, or the change is kept in memory.
func (eh *ErrorHandler) IsRecoverable(err error) bool {
	return eh.IsValidationError(err) || eh.IsNotFoundError(err) || eh.IsStorageError(err) ||
		errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
