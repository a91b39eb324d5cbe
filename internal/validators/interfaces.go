// Package validators checks secret note requests before the service layer
// touches storage or the vault. Errors are sentinels from errors.go wrapped
// with the offending field or variable index.
package validators

import "context"

// Validator checks obj. When fields is non-empty only those checks run,
// using the Field* names declared alongside each implementation.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
