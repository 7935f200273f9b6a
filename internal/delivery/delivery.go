// Package delivery defines the contract every transport front end of the
// service fulfills.
package delivery

import "context"

// Delivery is a blocking transport server. Serve runs until the server is
// shut down or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
