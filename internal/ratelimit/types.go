package ratelimit

import (
	"io"

	"github.com/ulule/limiter/v3"
)

// per-client request limiting for the API
type Limiter struct {
	limiter *limiter.Limiter
	closer  io.Closer // backing redis client, nil for the memory store
}
