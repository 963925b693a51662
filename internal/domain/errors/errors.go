package errors

import (
	"net/http"

	"estate/internal/errors"
)

// Kind is the coarse failure category a caller can branch on.
type Kind string

const (
	KindNotFound           Kind = "NotFound"
	KindConflict           Kind = "Conflict"
	KindInvalidCredentials Kind = "InvalidCredentials"
	KindInvalidCode        Kind = "InvalidCode"
	KindExpired            Kind = "Expired"
	KindValidationFailed   Kind = "ValidationFailed"
	KindUpstreamFailure    Kind = "UpstreamFailure"
	KindForbidden          Kind = "Forbidden"
	KindRateLimited        Kind = "RateLimited"
	KindInternal           Kind = "Internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }
func (e *BaseError) Kind() Kind        { return e.kind }

// Is matches on the business code so WithDetails copies still satisfy errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// Predefined error types
var (
	// Account
	ErrAccountNotFound      = NewBaseError(KindNotFound, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "account not found")
	ErrAccountAlreadyExists = NewBaseError(KindConflict, http.StatusConflict, "ACCOUNT_ALREADY_EXISTS", "email is already registered")
	ErrAlreadyVerified      = NewBaseError(KindConflict, http.StatusConflict, "ACCOUNT_ALREADY_VERIFIED", "email is already verified")
	ErrEmailNotVerified     = NewBaseError(KindForbidden, http.StatusForbidden, "EMAIL_NOT_VERIFIED", "email address has not been verified")

	// Authentication
	ErrInvalidCredentials  = NewBaseError(KindInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password")
	ErrRefreshTokenInvalid = NewBaseError(KindInvalidCredentials, http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "invalid or expired refresh token")
	ErrUnauthorized        = NewBaseError(KindInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED", "missing or invalid access token")
	ErrPasswordHashFailed  = NewBaseError(KindInternal, http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "password processing failed")
	ErrInvalidDigest       = NewBaseError(KindInternal, http.StatusInternalServerError, "INVALID_DIGEST", "stored digest is malformed")

	// OTP
	ErrInvalidOTP = NewBaseError(KindInvalidCode, http.StatusBadRequest, "INVALID_OTP", "invalid verification code")
	ErrOTPExpired = NewBaseError(KindExpired, http.StatusGone, "OTP_EXPIRED", "verification code has expired")

	// Seller
	ErrSellerNotFound = NewBaseError(KindNotFound, http.StatusNotFound, "SELLER_NOT_FOUND", "seller profile not found")
	ErrSellerRejected = NewBaseError(KindForbidden, http.StatusForbidden, "SELLER_REJECTED", "seller profile was rejected")

	// Property
	ErrPropertyNotFound     = NewBaseError(KindNotFound, http.StatusNotFound, "PROPERTY_NOT_FOUND", "property not found")
	ErrPropertyAlreadySaved = NewBaseError(KindConflict, http.StatusConflict, "PROPERTY_ALREADY_SAVED", "property is already saved")
	ErrSavedPropertyMissing = NewBaseError(KindNotFound, http.StatusNotFound, "SAVED_PROPERTY_NOT_FOUND", "property is not in saved list")

	// News and contacts
	ErrNewsNotFound    = NewBaseError(KindNotFound, http.StatusNotFound, "NEWS_NOT_FOUND", "news article not found")
	ErrContactNotFound = NewBaseError(KindNotFound, http.StatusNotFound, "CONTACT_NOT_FOUND", "contact message not found")

	// General
	ErrValidationFailed  = NewBaseError(KindValidationFailed, http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	ErrTransactionFailed = NewBaseError(KindInternal, http.StatusInternalServerError, "TRANSACTION_FAILED", "database transaction failed")
	ErrInternalError     = NewBaseError(KindInternal, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	ErrForbidden         = NewBaseError(KindForbidden, http.StatusForbidden, "FORBIDDEN", "access denied")
	ErrRateLimited       = NewBaseError(KindRateLimited, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, slow down")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
func (e *DatabaseExecuteError) Kind() Kind        { return KindInternal }

// UpstreamError reports a failed call to an external collaborator (mail, image storage).
type UpstreamError struct {
	service string
	err     error
}

// NewUpstreamError wraps a collaborator failure.
func NewUpstreamError(service string, err error) AppError {
	return &UpstreamError{service: service, err: err}
}

func (e *UpstreamError) Error() string {
	return errors.Wrapf(e.err, "%s call failed", e.service).Error()
}

func (e *UpstreamError) Unwrap() error     { return e.err }
func (e *UpstreamError) HTTPCode() int     { return http.StatusBadGateway }
func (e *UpstreamError) ErrorCode() string { return "UPSTREAM_FAILURE" }
func (e *UpstreamError) Message() string   { return e.service + " is currently unavailable" }
func (e *UpstreamError) Details() string   { return "" }
func (e *UpstreamError) Kind() Kind        { return KindUpstreamFailure }

// KindOf classifies any error, wrapped or not, into the failure taxonomy.
// Errors that carry no AppError are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
