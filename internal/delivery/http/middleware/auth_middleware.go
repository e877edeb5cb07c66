package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
	"go-jobpilot-backend/pkg/auth"
)

// AuthMiddleware gates protected routes on a bearer token. A request with no
// credential at all is 403; a credential that fails validation is 401 with
// WWW-Authenticate set.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))

		sub, err := tokens.Validate(tokenString)
		if err != nil {
			code := http.StatusUnauthorized
			message := "Could not validate credentials"
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				code = appErr.Code
				message = appErr.Message
			}
			if code == http.StatusUnauthorized {
				c.Header("WWW-Authenticate", "Bearer")
			}
			response.Error(c, code, message, nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), sub)
		// Usecases read the subject from the request context, not gin's.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
