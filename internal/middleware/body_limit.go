package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewBodyLimitMiddleware caps the request body at limit bytes. Reads past the
// cap fail with *http.MaxBytesError. Register it after any decompression so
// the cap applies to the inflated body.
func NewBodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
