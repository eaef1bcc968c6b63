package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys and headers shared by middleware and handlers.
const (
	usernameCtxKey  = "username"
	requestIDCtxKey = "requestID"
	requestIDHeader = "X-Request-Id"

	bearerPrefix = "Bearer "
)

// authMiddleware guards protected routes. A missing or malformed
// Authorization header is rejected before any token parsing; a present but
// unverifiable token (bad signature, malformed, expired) is rejected after.
// The downstream handler only runs with a verified username in context.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "Token required",
		})
		return
	}

	username, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "Invalid or expired token",
		})
		return
	}

	c.Set(usernameCtxKey, username)
	c.Next()
}

// requestIDMiddleware tags every request with an id for log correlation,
// honoring an id supplied by the caller.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDCtxKey, id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

// corsMiddleware admits cross-origin browser clients on all routes. Any
// origin may call the API; credentials are carried in the Authorization
// header, not cookies.
func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	})
}

// securityHeadersMiddleware sets conservative browser-protection headers on
// every response.
func (h *Handler) securityHeadersMiddleware(c *gin.Context) {
	header := c.Writer.Header()
	header.Set("X-Content-Type-Options", "nosniff")
	header.Set("X-Frame-Options", "SAMEORIGIN")
	header.Set("X-XSS-Protection", "0")
	header.Set("X-DNS-Prefetch-Control", "off")
	header.Set("X-Download-Options", "noopen")
	header.Set("Referrer-Policy", "no-referrer")
	c.Next()
}
