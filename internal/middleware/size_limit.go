// Package middleware contain gin middleware shared by the route groups.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var multipartOverhead = int64(8 * 1024) // rough padding for multipart framing

// SizeLimit caps the request body at maxBodyBytes plus multipart overhead.
// Reading past the cap makes the form parser surface http.MaxBytesError,
// which the upload handler turns into a 413 response.
func SizeLimit(maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes+multipartOverhead)

		c.Next()
	}
}
