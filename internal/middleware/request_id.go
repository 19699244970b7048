package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
)

const (
	// HeaderRequestID echoes the request ID back to the caller.
	HeaderRequestID = "X-Request-ID"
	// HeaderUserID identifies the caller; authentication happens upstream.
	HeaderUserID = "X-User-ID"

	ctxKeyRequestID = "request_id"
)

// RequestID assigns every request a UUID unless the caller supplied one.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// ScopeFromContext builds the per-request scope from the middleware state.
func ScopeFromContext(c *gin.Context) model.Scope {
	sc := model.Scope{
		UserID:    c.GetHeader(HeaderUserID),
		RequestID: c.GetString(ctxKeyRequestID),
	}
	if sc.UserID == "" {
		sc.UserID = "anonymous"
	}
	return sc
}
