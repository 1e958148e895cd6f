package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/chirper/pkg/response"
)

// KeyFunc builds the counter key a request is charged against.
type KeyFunc func(c *gin.Context) string

// AllowFunc reports whether a request bypasses the limit.
type AllowFunc func(c *gin.Context) bool

func KeyByIP() KeyFunc {
	return func(c *gin.Context) string { return "rl:ip:" + ipFromCtx(c) }
}

func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string { return "rl:path:" + normalizePath(c) + ":ip:" + ipFromCtx(c) }
}

// KeyByUserID charges authenticated users by ID and anonymous callers by IP.
func KeyByUserID() KeyFunc {
	return func(c *gin.Context) string {
		if uid := c.GetString(CtxUserIDKey); uid != "" {
			return "rl:user:" + uid
		}
		return "rl:user:anon:ip:" + ipFromCtx(c)
	}
}

// AllowPrivateIP lets loopback and private-range clients through.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		ip := net.ParseIP(ipFromCtx(c))
		return ip != nil && (ip.IsLoopback() || ip.IsPrivate())
	}
}

// hitScript counts one request in a fixed window and returns {count, pttl}.
var hitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// Limit is a fixed-window limit of Max requests per Window for each key.
type Limit struct {
	Max    int
	Window time.Duration
	Key    KeyFunc
	Allow  AllowFunc
}

// RateLimit answers 429 once a key exceeds max requests within window.
// Without Redis it is a pass-through; Redis errors fail open.
func RateLimit(rdb *redis.Client, max int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	return Limit{Max: max, Window: window, Key: keyFn, Allow: allow}.Handler(rdb)
}

func (l Limit) Handler(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil || l.Max <= 0 || l.Window <= 0 || l.Key == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || (l.Allow != nil && l.Allow(c)) {
			c.Next()
			return
		}

		count, reset, err := hit(c.Request.Context(), rdb, l.Key(c), l.Window)
		if err != nil {
			c.Next()
			return
		}
		resetSec := int(math.Ceil(reset.Seconds()))

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining(l.Max, count)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > l.Max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Abort(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}

func hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int, time.Duration, error) {
	vals, err := hitScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(vals) != 2 {
		return 0, 0, redis.Nil
	}
	reset := time.Duration(vals[1]) * time.Millisecond
	if reset < 0 {
		reset = 0
	}
	return int(vals[0]), reset, nil
}

func remaining(max, count int) int {
	if count >= max {
		return 0
	}
	return max - count
}

func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString(CtxRealIPKey); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func normalizePath(c *gin.Context) string {
	if fp := c.FullPath(); fp != "" {
		return fp
	}
	return c.Request.URL.Path
}
