package response

import "net/http"

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrAuthRequired       ErrCode = "AUTHENTICATION_REQUIRED"
	ErrNotAuthenticated   ErrCode = "NOT_AUTHENTICATED"

	// ─── Option invariants ─────────────────────────────────────────────
	ErrMinOptions    ErrCode = "MIN_OPTIONS"
	ErrMaxOptions    ErrCode = "MAX_OPTIONS"
	ErrMultipleValid ErrCode = "MULTIPLE_VALID_NOT_SUPPORTED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrInvalidID  ErrCode = "INVALID_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrObjectNotFound ErrCode = "OBJECT_NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// Value returns the numeric domain value carried in error payloads.
func Value(code ErrCode) int {
	switch code {
	case ErrInvalidCredentials:
		return 1001
	case ErrAuthRequired:
		return 1002
	case ErrNotAuthenticated:
		return 1003
	case ErrMinOptions:
		return 1004
	case ErrMaxOptions:
		return 1005
	case ErrMultipleValid:
		return 1006
	case ErrValidation:
		return 1400
	case ErrInvalidID:
		return 1401
	case ErrObjectNotFound:
		return 1404
	case ErrRateLimitExceeded:
		return 1429
	default:
		return 1500
	}
}

// Status returns the HTTP status associated with an error code.
func Status(code ErrCode) int {
	switch code {
	case ErrInvalidCredentials:
		return http.StatusForbidden
	case ErrAuthRequired, ErrNotAuthenticated:
		return http.StatusUnauthorized
	case ErrMinOptions, ErrMaxOptions, ErrMultipleValid:
		return http.StatusNotAcceptable
	case ErrValidation, ErrInvalidID:
		return http.StatusBadRequest
	case ErrObjectNotFound:
		return http.StatusNotFound
	case ErrRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Invalid credentials."
	case ErrAuthRequired:
		return "Authentication required."
	case ErrNotAuthenticated:
		return "Not authenticated."
	case ErrMinOptions:
		return "A question must keep at least 2 options."
	case ErrMaxOptions:
		return "A question cannot hold more than 10 options."
	case ErrMultipleValid:
		return "Multiple valid options are not supported for this question type."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid identifier format."
	case ErrObjectNotFound:
		return "Object not found."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
