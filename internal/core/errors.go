// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenMissing = errors.New("token missing")
	ErrUnavailable  = errors.New("service unavailable")
)

// AppError is a failure with a stable machine-readable code and an HTTP
// status, carried from the service layer to the response envelope.
type AppError struct {
	Err     error
	Code    string
	Message string
	Status  int
	Details string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:     err,
		Code:    code,
		Message: message,
		Status:  status,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func TokenMissingError() *AppError {
	return NewAppError(
		ErrTokenMissing,
		"token is missing",
		http.StatusUnauthorized,
		"NO_TOKEN",
	)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		ErrTokenExpired,
		"token has expired",
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"token is invalid",
		http.StatusUnauthorized,
		"INVALID_TOKEN",
	)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
	)
}

func ForbiddenError(message string) *AppError {
	if message == "" {
		message = "insufficient permissions"
	}
	return NewAppError(ErrForbidden, message, http.StatusForbidden, "UNAUTHORIZED")
}

func MissingFieldError(field string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
		"MISSING_FIELD",
	)
}

func InvalidFieldError(field, reason string) *AppError {
	return NewAppError(
		ErrInvalidInput,
		fmt.Sprintf("%s %s", field, reason),
		http.StatusBadRequest,
		"INVALID_FIELD",
	)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		ErrNotFound,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		"NOT_FOUND",
	)
}

func DuplicateError(resource, code string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		fmt.Sprintf("%s already exists", resource),
		http.StatusConflict,
		code,
	)
}

func ServiceUnavailableError(message string) *AppError {
	return NewAppError(
		ErrUnavailable,
		message,
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
	)
}

func StoreError(op string, err error) *AppError {
	return &AppError{
		Err:     err,
		Code:    strings.ToUpper(op) + "_FAILED",
		Message: "operation failed",
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts validator.v10 failures into an AppError.
// "required" failures get the MISSING_FIELD code; everything else is
// INVALID_FIELD. Detection happens before any store access.
func ValidationError(err error) *AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewAppError(
			ErrInvalidInput,
			"invalid request body",
			http.StatusBadRequest,
			"INVALID_FIELD",
		)
	}

	first := verrs[0]
	if first.Tag() == "required" {
		return MissingFieldError(first.Field())
	}

	return InvalidFieldError(
		first.Field(),
		fmt.Sprintf("failed validation on %q", first.Tag()),
	)
}
