package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnverified indicates that the user has not verified their email address yet.
var ErrUnverified = errors.New("email not verified")

// ErrRateFetch indicates that a call to the external rate provider failed.
// Callers see only the fixed per-operation message below; upstream response
// text is never forwarded to clients.
var ErrRateFetch = errors.New("rate fetch failed")

// Fixed client-facing messages for rate provider failures, one per
// operation. Vendor-specific detail stays in the logs.
const (
	MsgConvertFetchFailed    = "Error fetching exchange rate"
	MsgHistoricalFetchFailed = "Error fetching historical exchange rate"
	MsgCurrentFetchFailed    = "Error fetching current exchange rate"
)
