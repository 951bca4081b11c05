package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
	"github.com/polkiloo/autoservice/internal/server/http/dto"
)

// DecompressRequest transparently inflates gzip encoded request bodies.
// Responses are compressed by gin-contrib/gzip in the router.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		encoding := strings.ToLower(c.GetHeader("Content-Encoding"))
		if !strings.Contains(encoding, "gzip") {
			c.Next()
			return
		}

		body := c.Request.Body
		reader, err := gzip.NewReader(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Code: domainErrors.CodeOf(domainErrors.ErrInvalidInput)})
			return
		}
		defer reader.Close()
		defer body.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
