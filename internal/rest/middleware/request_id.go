package middleware

import (
	"github.com/clinicore/clinicore/internal/types"
	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a request ID to the context and echoes it in
// the response headers, honoring an incoming X-Request-ID when present.
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = types.GenerateRequestID()
	}

	ctx := types.SetRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Writer.Header().Set(requestIDHeader, requestID)

	c.Next()
}
