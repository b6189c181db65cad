package cache

import (
	"context"
	"time"
)

// Cache is a string key/value store with per-key TTL, used for short-lived
// gateway credentials. Last writer wins on concurrent sets; the credential
// fetches behind it are idempotent at the gateway, so duplicate concurrent
// fills are a performance concern, not a correctness one.
type Cache interface {
	// Get returns the value and true when the key is present and unexpired.
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}
