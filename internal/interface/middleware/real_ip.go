package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// CtxRealIPKey holds the resolved client IP.
const CtxRealIPKey = "real_ip"

// RealIP resolves the client IP from CF-Connecting-IP, then the left-most
// X-Forwarded-For entry, then gin's ClientIP.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, realIP(c))
		c.Next()
	}
}

func realIP(c *gin.Context) string {
	candidates := []string{c.GetHeader("CF-Connecting-IP")}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		candidates = append(candidates, first)
	}
	for _, cand := range candidates {
		if ip := net.ParseIP(strings.TrimSpace(cand)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
