package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user's id as stored by the auth
// middleware, or 0 for an unauthenticated request.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, ok := v.(uint)
	if !ok {
		return 0
	}
	return id
}

// CurrentRole returns the authenticated user's role, or "" when absent.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
