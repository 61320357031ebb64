// Package errors defines the application error taxonomy shared by usecases and the delivery layer.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details. The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same error code, so detailed copies compare equal to the sentinel.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode
}

// Taxonomy roots.
var (
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication is required",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Input validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInsufficientBalance = NewBaseError(
		http.StatusUnprocessableEntity,
		"INSUFFICIENT_BALANCE",
		"Not enough points for this redemption",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// Account and session errors.
var (
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Refresh token is invalid or expired",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"Maximum number of active sessions reached",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Google ID token is invalid",
		"",
	)

	ErrOAuthDisabled = NewBaseError(
		http.StatusNotFound,
		"OAUTH_DISABLED",
		"Google sign-in is not configured",
		"",
	)
)

// Loyalty errors.
var (
	ErrLoyaltyDisabled = NewBaseError(
		http.StatusForbidden,
		"LOYALTY_DISABLED",
		"The loyalty program is currently disabled",
		"",
	)

	ErrRedeemBelowMinimum = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Redemption is below the minimum number of points",
		"",
	)

	ErrLoyaltyAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"LOYALTY_ACCOUNT_NOT_FOUND",
		"Loyalty account not found",
		"",
	)

	ErrInvalidTierCatalog = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Tier catalog is invalid",
		"",
	)

	ErrInvalidLoyaltySettings = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Loyalty settings are invalid",
		"",
	)
)

// ErrReferralCodeInvalid is returned when a signup references an unknown referral code.
var ErrReferralCodeInvalid = NewBaseError(
	http.StatusBadRequest,
	"REFERRAL_CODE_INVALID",
	"Referral code does not exist",
	"",
)

// Coupon and order errors.
var (
	ErrCouponNotFound = NewBaseError(
		http.StatusNotFound,
		"COUPON_NOT_FOUND",
		"Coupon not found",
		"",
	)

	ErrCouponCodeTaken = NewBaseError(
		http.StatusConflict,
		"COUPON_CODE_TAKEN",
		"A coupon with this code already exists",
		"",
	)

	ErrCouponNotApplicable = NewBaseError(
		http.StatusBadRequest,
		"COUPON_NOT_APPLICABLE",
		"Coupon cannot be applied to this order",
		"",
	)

	ErrCouponUsageExhausted = NewBaseError(
		http.StatusConflict,
		"COUPON_USAGE_EXHAUSTED",
		"Coupon usage limit reached",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderNotPending = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_PENDING",
		"Only pending orders can be completed",
		"",
	)
)

// UpstreamError represents a database or network failure, implementing the AppError interface.
// Its cause is logged server side and never returned to clients.
type UpstreamError struct {
	err     error
	details string
}

// NewUpstreamError wraps an infrastructure failure.
func NewUpstreamError(err error, details string) AppError {
	return &UpstreamError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the underlying failure to errors.Is/As.
func (e *UpstreamError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *UpstreamError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_FAILURE"
}

// Message returns the user-friendly error message
func (e *UpstreamError) Message() string {
	return "A backing service failed, please try again later"
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.details
}
