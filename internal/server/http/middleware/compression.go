package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DecompressRequest unwraps gzip-encoded request bodies before binding. A
// body that claims gzip but does not parse aborts with 400.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		raw := c.Request.Body
		zr, err := gzip.NewReader(raw)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		defer func() {
			_ = zr.Close()
			_ = raw.Close()
		}()

		c.Request.Header.Del("Content-Encoding")
		c.Request.Body = io.NopCloser(zr)
		c.Next()
	}
}
