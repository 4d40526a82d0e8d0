package booking

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers. Infrastructure failures are wrapped and
// reported as a generic failure instead.
const (
	CodeValidation       = "validation_error"
	CodeInvalidWindow    = "invalid_window"
	CodeNotFound         = "not_found"
	CodeAlreadyCancelled = "already_cancelled"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func NewInvalidWindowError(msg string) error {
	return &BookingError{Code: CodeInvalidWindow, Message: msg}
}

func NewNotFoundError(bookingID string) error {
	return &BookingError{Code: CodeNotFound, Message: fmt.Sprintf("no booking with id %s", bookingID)}
}

func NewAlreadyCancelledError(bookingID string) error {
	return &BookingError{Code: CodeAlreadyCancelled, Message: fmt.Sprintf("booking %s is already cancelled", bookingID)}
}

// ErrorCode extracts the booking error code, or "" for infrastructure errors.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
