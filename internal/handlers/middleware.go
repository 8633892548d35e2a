package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context key under which the authenticated user's id is stored.
const userCtxKey = "userId"

// userIdMiddleware guards the /api/v1 group. It requires a Bearer token
// issued by sign-in and stores the resolved user id in the request context.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userId, err := h.services.ParseToken(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userCtxKey, userId)
	c.Next()
}
