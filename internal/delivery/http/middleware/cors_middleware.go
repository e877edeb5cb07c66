package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobpilot-backend/config"
)

// CORSMiddleware applies the configured origin/method/header allowlists.
// The development default is permissive ("*"); production deployments set
// explicit origins via CORS_ORIGINS.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowAll := len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*"
	allowed := make(map[string]bool, len(cfg.CORSOrigins))
	for _, o := range cfg.CORSOrigins {
		allowed[o] = true
	}

	methods := strings.Join(cfg.CORSMethods, ", ")
	if methods == "*" {
		methods = "POST, GET, OPTIONS, PUT, DELETE, PATCH"
	}
	headers := strings.Join(cfg.CORSHeaders, ", ")
	if headers == "*" {
		headers = "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID"
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Same-origin requests send no Origin header; nothing to negotiate.
		isAllowed := origin == "" || allowAll || allowed[origin]

		if isAllowed && origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			if cfg.CORSCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Max-Age", "86400")
		}

		// Caches must differentiate by Origin
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
