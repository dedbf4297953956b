package apperror

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable classification of an application error,
// returned to clients alongside the human-readable message.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindNotFound            Kind = "not_found"
	KindInvalidCharge       Kind = "invalid_charge"
	KindInsufficientPayment Kind = "insufficient_payment"
	KindInsufficientStock   Kind = "insufficient_stock"
	KindInternal            Kind = "internal"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Kind    Kind         `json:"kind"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Kind: KindNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Kind: KindValidation, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Kind: KindInternal, Message: "Internal server error"}
)

// NewAppError creates a new application error
func NewAppError(code int, kind Kind, message string) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Kind:    KindValidation,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

// NewInvalidChargeError reports a submitted charge that does not exist in the catalog
func NewInvalidChargeError(chargeID string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidCharge,
		Message: "Invalid charge ID: " + chargeID,
	}
}

// NewInsufficientPaymentError reports a cash payment below the order total
func NewInsufficientPaymentError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInsufficientPayment,
		Message: "Insufficient cash provided",
	}
}

// NewInsufficientStockError reports the first variant that failed the stock check
func NewInsufficientStockError(variantID string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindInsufficientStock,
		Message: "Insufficient stock for variant " + variantID,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindInternal,
		Message: err.Error(),
	}
}
