package services

import "errors"

// Error taxonomy. Handlers dispatch on these with errors.Is: validation and
// authorization failures are never persisted, not-found stays distinct from
// an empty result set, and storage failures are retryable by the caller.
var (
	ErrValidation      = errors.New("validation failed")
	ErrItemNotFound    = errors.New("item not found")
	ErrReportNotFound  = errors.New("report not found")
	ErrWrongPassword   = errors.New("incorrect deletion password")
	ErrDuplicateReport = errors.New("item already has a pending report")
	ErrReportResolved  = errors.New("report already resolved")
	ErrStorage         = errors.New("storage unavailable")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)
