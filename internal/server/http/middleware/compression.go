package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grubtruck/grubtruck/internal/server/http/dto"
)

// DecompressRequest swaps the request body for a gzip reader when the client
// sent a gzip encoded payload. Undecodable bodies are rejected with 400.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		compressed := c.Request.Body
		reader, err := gzip.NewReader(compressed)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed gzip payload"})
			return
		}
		defer reader.Close()
		defer compressed.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Next()
	}
}
