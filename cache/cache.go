// Package cache provides the response cache used by the HTTP boundary to
// memoize recomputation of identical simulation requests. Nothing here
// persists simulation history; entries are disposable by construction.
package cache

import "context"

// Cache is a string key/value store with presence reporting. A lookup miss
// and a backend failure are both reported as absence; callers recompute.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}
