package github

import (
	"context"

	"golang.org/x/time/rate"
)

// proactiveRate throttles tracker calls well under GitHub's
// authenticated quota (5000/hour) so a chatty session never trips it.
const proactiveRate = 1.2

// burst allows a short run of calls (answer turn plus a ticket action)
// without waiting.
const burst = 3

// rateLimiter proactively throttles outgoing tracker calls.
// There is no reactive retry; a rate-limited response surfaces to the
// caller like any other tracker error.
type rateLimiter struct {
	bucket *rate.Limiter
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		bucket: rate.NewLimiter(rate.Limit(proactiveRate), burst),
	}
}

// Wait blocks until it is safe to make a request.
func (r *rateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}
