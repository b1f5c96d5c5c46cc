// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file guards the admin routes. The portal has a single operator role,
// so authentication is a static bearer token configured at deploy time; there
// is no user store and no session state. The token comparison is constant
// time so response timing leaks nothing about the configured value.
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuth returns a Gin middleware that requires a bearer token equal to
// the configured admin token.
//
// Accepted forms of the Authorization header:
//
//	Authorization: Bearer <token>
//
// A missing or mismatched token yields 401 with the standard error envelope.
// An empty configured token rejects every request, so a misconfigured
// deployment fails closed rather than open.
func AdminAuth(token string) gin.HandlerFunc {
	want := []byte(token)
	return func(c *gin.Context) {
		got := bearerToken(c.GetHeader("Authorization"))
		if token == "" || got == "" ||
			subtle.ConstantTimeCompare([]byte(got), want) != 1 {
			c.Header("WWW-Authenticate", `Bearer realm="admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"message":    "missing or invalid admin credentials",
			})
			return
		}
		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer x" header,
// returning "" when the header is absent or malformed. The scheme match is
// case-insensitive per RFC 7235.
func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) <= len(prefix) {
		return ""
	}
	if !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
