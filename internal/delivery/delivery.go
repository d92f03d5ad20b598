// Package delivery holds the inbound transports of the service.
package delivery

import "context"

// Delivery is a blocking transport started by the application's invoke hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
