package app

import "context"

// Store is the persistent store adapter the manager saves the serialized cart
// through. One opaque string value per key, synchronous access. Get reports
// absence through its second return, not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
