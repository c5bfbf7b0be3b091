// Package delivery defines the contract every transport entrypoint
// satisfies.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
