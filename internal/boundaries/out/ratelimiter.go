package out

import "context"

// RateLimiter defines the contract for throttling outbound requests.
// Keys are typically a remote host.
type RateLimiter interface {
	// Wait blocks until a request for key may proceed or ctx is done.
	Wait(ctx context.Context, key string) error
}
