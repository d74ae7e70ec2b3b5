// Package delivery contains the process entry points started by the application.
package delivery

import "context"

// Delivery is a long-running entry point such as an HTTP server or a background worker.
// Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
