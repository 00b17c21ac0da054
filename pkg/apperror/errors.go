package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Payment Dispatch (PAY) ----

// ErrDispatchExhausted is returned when every retry attempt against both
// processors failed. The only dispatch failure a client ever sees.
func ErrDispatchExhausted(err error) *AppError {
	return Wrap("PAY_001", "Payment could not be dispatched to any processor", http.StatusInternalServerError, err)
}

func ErrInvalidAmount() *AppError {
	return New("PAY_002", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidCorrelationID() *AppError {
	return New("PAY_003", "Invalid correlation ID", http.StatusBadRequest)
}

// ---- Summary (SUM) ----

func ErrInvalidTimeRange() *AppError {
	return New("SUM_001", "Invalid time range", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a field-level validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
