package store

// ErrorClassification tells [DB.withRetry] whether a failed statement may be
// repeated.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, syntax errors
	// and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlocks, a busy or locked database.
	Retryable
)
