package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidSession     = "INVALID_SESSION"
	ErrCodeDuplicateSession   = "DUPLICATE_SESSION"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "DUPLICATE_SESSION")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInvalidSessionError creates a new INVALID_SESSION error. It is raised
// before any state mutation, so callers may correct and resubmit the session.
func NewInvalidSessionError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidSession,
		Message: fmt.Sprintf("invalid session: %s", reason),
		Status:  400,
	}
}

// NewDuplicateSessionError creates a new DUPLICATE_SESSION error. The session
// identified by missionID has already been processed; no state was changed.
func NewDuplicateSessionError(missionID string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicateSession,
		Message: fmt.Sprintf("session already processed: %s", missionID),
		Status:  409,
	}
}

// NewConflictError creates a new CONFLICT error, raised when concurrent-write
// retries are exhausted. The submission applied no effects and may be retried.
func NewConflictError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: "concurrent update contention, retry the submission",
		Status:  409,
		Err:     err,
	}
}

// NewStorageUnavailableError creates a new STORAGE_UNAVAILABLE error
func NewStorageUnavailableError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeStorageUnavailable,
		Message: "storage unavailable",
		Status:  503,
		Err:     err,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}
