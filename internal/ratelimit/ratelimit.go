package ratelimit

import (
	"fmt"
	"strconv"
	"time"

	"codeberg.org/commentgen/server/internal/errors"
	"codeberg.org/commentgen/server/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// creates a limiter for a formatted rate such as "30-M".
// counters live in redis when redisURL is set, in process memory otherwise.
func New(formattedRate, redisURL string) (*Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formattedRate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formattedRate, err)
	}

	if redisURL == "" {
		return &Limiter{
			limiter: limiter.New(memory.NewStore(), rate),
		}, nil
	}

	store, client, err := newRedisStore(redisURL)
	if err != nil {
		return nil, err
	}

	return &Limiter{
		limiter: limiter.New(store, rate),
		closer:  client,
	}, nil
}

// returns a gin middleware that rejects clients over the limit with 429
func (l *Limiter) Middleware() gin.HandlerFunc {
	return mgin.NewMiddleware(l.limiter,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.Warn("rate limit exceeded",
				"ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)

			c.Header("Retry-After", strconv.Itoa(int(l.limiter.Rate.Period/time.Second)))
			errors.TooManyRequests(c, "too many requests. please slow down.")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "failed to check rate limit", err)
		}),
	)
}

// releases the backing store connection
func (l *Limiter) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}
