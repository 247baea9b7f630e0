// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a transport started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
