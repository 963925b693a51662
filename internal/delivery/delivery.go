// Package delivery defines the runnable entry points (HTTP servers) of the application.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
