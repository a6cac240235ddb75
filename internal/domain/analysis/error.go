package analysis

import "errors"

var (
	// ErrUnavailable covers transport failures, timeouts and non-quota
	// upstream errors.
	ErrUnavailable = errors.New("AI service unavailable")
	// ErrQuotaExceeded is the upstream provider's own rate limit, distinct
	// from the per-user daily quota.
	ErrQuotaExceeded = errors.New("AI provider quota exceeded")
	// ErrMalformedResponse means the model answered but the content did not
	// survive sanitization and schema validation.
	ErrMalformedResponse = errors.New("AI returned malformed response")
)
