package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeAuthentication indicates bad credentials on sign-in.
	ErrCodeAuthentication ErrorCode = "authentication"
	// ErrCodeDuplicateAccount indicates a sign-up with an already-registered email.
	ErrCodeDuplicateAccount ErrorCode = "duplicate_account"
	// ErrCodeRateLimited indicates backend throttling.
	ErrCodeRateLimited ErrorCode = "rate_limited"
	// ErrCodeNotAuthenticated indicates an operation that requires a principal was
	// attempted without one.
	ErrCodeNotAuthenticated ErrorCode = "not_authenticated"
	// ErrCodePartialSignup indicates a sign-up where a later write failed after an
	// earlier one succeeded, leaving a partially-created account.
	ErrCodePartialSignup ErrorCode = "partial_signup"
	// ErrCodeProfileDegraded indicates the principal resolved but the user record or
	// role profile fetch failed.
	ErrCodeProfileDegraded ErrorCode = "profile_degraded"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a conflict with existing data (e.g., unique constraint violation).
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
	// Stage identifies which step of a multi-step operation failed (optional,
	// used by partial sign-up errors: "user_record" or "role_profile")
	Stage string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Authentication creates a new Authentication error.
func Authentication(message string) *AppError {
	return &AppError{Code: ErrCodeAuthentication, Message: message}
}

// DuplicateAccount creates a new DuplicateAccount error.
func DuplicateAccount(message string) *AppError {
	return &AppError{Code: ErrCodeDuplicateAccount, Message: message}
}

// RateLimited creates a new RateLimited error.
func RateLimited(message string) *AppError {
	return &AppError{Code: ErrCodeRateLimited, Message: message}
}

// NotAuthenticated creates a new NotAuthenticated error.
func NotAuthenticated(message string) *AppError {
	return &AppError{Code: ErrCodeNotAuthenticated, Message: message}
}

// PartialSignup creates a new PartialSignup error for the given failed stage,
// preserving the underlying cause.
func PartialSignup(stage string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodePartialSignup,
		Message: "account partially created; a later sign-up step failed",
		Stage:   stage,
		Cause:   cause,
	}
}

// ProfileDegraded creates a new ProfileDegraded error preserving the fetch failure.
func ProfileDegraded(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeProfileDegraded,
		Message: "signed in, but profile data could not be loaded",
		Cause:   cause,
	}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsAuthentication checks if an error is an Authentication error.
func IsAuthentication(err error) bool {
	return isCode(err, ErrCodeAuthentication)
}

// IsDuplicateAccount checks if an error is a DuplicateAccount error.
func IsDuplicateAccount(err error) bool {
	return isCode(err, ErrCodeDuplicateAccount)
}

// IsRateLimited checks if an error is a RateLimited error.
func IsRateLimited(err error) bool {
	return isCode(err, ErrCodeRateLimited)
}

// IsNotAuthenticated checks if an error is a NotAuthenticated error.
func IsNotAuthenticated(err error) bool {
	return isCode(err, ErrCodeNotAuthenticated)
}

// IsPartialSignup checks if an error is a PartialSignup error.
func IsPartialSignup(err error) bool {
	return isCode(err, ErrCodePartialSignup)
}

// IsProfileDegraded checks if an error is a ProfileDegraded error.
func IsProfileDegraded(err error) bool {
	return isCode(err, ErrCodeProfileDegraded)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool {
	return isCode(err, ErrCodeConflict)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// GetStage returns the Stage from an error, or empty string if not an AppError or no stage set.
func GetStage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Stage
	}
	return ""
}
