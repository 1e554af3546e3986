// Package delivery groups the entry points that expose the application: the REST API and the worker.
package delivery

import "context"

// Delivery is a long-running server started by the binary.
type Delivery interface {
	Serve(ctx context.Context) error
}
