package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/shared/server/respond"
)

// BodyLimit rejects requests whose declared length exceeds maxBytes and caps
// the body reader for the rest. limitFor may widen the cap per route.
func BodyLimit(maxBytes int64, limitFor func(*gin.Context) int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := maxBytes
		if limitFor != nil {
			if l := limitFor(c); l > 0 {
				limit = l
			}
		}
		if limit <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > limit {
			respond.Error(c, http.StatusRequestEntityTooLarge, "Request body too large", "")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
