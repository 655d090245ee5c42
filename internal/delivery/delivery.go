package delivery

import "context"

// Delivery is a transport that serves the engine until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
