// Package workers runs the background jobs of the vault. A Worker blocks in
// Run until its context is cancelled; Workers runs a set of them
// concurrently.
package workers

import "context"

// Worker is a background job. Run must return once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
