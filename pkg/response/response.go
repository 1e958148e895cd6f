package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the JSON envelope every endpoint answers with.
type APIResponse[T any] struct {
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      T         `json:"data,omitempty"`
	Meta      any       `json:"meta,omitempty"`
	Error     any       `json:"error,omitempty"`
}

func envelope[T any](ctx *gin.Context, status int, message string) APIResponse[T] {
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString("request_id"),
		Success:   status < http.StatusBadRequest,
		Message:   message,
	}
}

// Success writes data with status (200 when zero).
func Success[T any](ctx *gin.Context, status int, data T, message string, meta any) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := envelope[T](ctx, status, message)
	resp.Data = data
	resp.Meta = meta
	ctx.JSON(status, resp)
	return resp
}

// Error writes an error envelope with status (400 when zero).
func Error[T any](ctx *gin.Context, status int, message string, detail any) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := envelope[T](ctx, status, message)
	resp.Error = detail
	ctx.JSON(status, resp)
	return resp
}

// Abort writes an error envelope and stops the handler chain.
func Abort(ctx *gin.Context, status int, message string, detail any) {
	Error[any](ctx, status, message, detail)
	ctx.Abort()
}
