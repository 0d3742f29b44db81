// Package demo provides the read-only guard used when the server is exposed
// as a public demo instance.
package demo

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware blocks write operations when read-only mode is active.
// GET, HEAD and OPTIONS requests always pass through.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a read-only middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether read-only mode is active.
func (m *Middleware) IsEnabled() bool {
	return m.enabled
}

// Handler returns a Gin middleware that rejects mutating requests.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		c.IndentedJSON(http.StatusForbidden, gin.H{
			"error":     "this action is disabled in read-only mode",
			"read_only": true,
		})
		c.Abort()
	}
}
