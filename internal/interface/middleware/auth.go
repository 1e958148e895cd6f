package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/chirper/pkg/helpers"
	"github.com/oksasatya/chirper/pkg/response"
)

// CtxUserIDKey is the gin context key holding the authenticated user's ID.
const CtxUserIDKey = "userID"

// Auth validates the access token (cookie, or Bearer header for API clients)
// and, when Redis is available, checks it belongs to the user's live session.
// It sets userID, userName and userEmail in the Gin context on success.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessToken(c)
		if token == "" {
			unauthorized(c, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			unauthorized(c, "invalid access token", err.Error())
			return
		}

		if rdb != nil {
			data, err := rdb.HGetAll(c.Request.Context(), helpers.SessionKey(claims.UserID)).Result()
			if err != nil || len(data) == 0 {
				unauthorized(c, "session not found", nil)
				return
			}
			if data["sid"] != claims.SessionID {
				unauthorized(c, "session expired", nil)
				return
			}
			c.Set("userName", data["name"])
			c.Set("userEmail", data["email"])
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func accessToken(c *gin.Context) string {
	if token, err := c.Cookie(helpers.AccessCookie); err == nil && token != "" {
		return token
	}
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func unauthorized(c *gin.Context, msg string, detail any) {
	response.Abort(c, http.StatusUnauthorized, msg, detail)
}
