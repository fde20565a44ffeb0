// Package delivery defines the contract every transport-facing server honors.
package delivery

import "context"

// Delivery is a long-running server managed by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
