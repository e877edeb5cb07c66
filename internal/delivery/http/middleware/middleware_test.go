package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpilot-backend/internal/delivery/http/middleware"
	"go-jobpilot-backend/internal/delivery/http/response"
	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
	"go-jobpilot-backend/pkg/auth"
	"go-jobpilot-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	m.Run()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30)
	userID := uuid.New()

	newRouter := func() (*gin.Engine, *string, *string) {
		var ginSubject, ctxSubject string
		r := gin.New()
		r.Use(middleware.AuthMiddleware(tokens))
		r.GET("/protected", func(c *gin.Context) {
			ginSubject = c.GetString(string(domain.KeyUserID))
			ctxSubject, _ = c.Request.Context().Value(domain.KeyUserID).(string)
			c.Status(http.StatusOK)
		})
		return r, &ginSubject, &ctxSubject
	}

	serve := func(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Should return 403 when no credential is presented", func(t *testing.T) {
		r, _, _ := newRouter()
		rec := serve(r, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeBody(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, "Not authenticated", body.Message)
		assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("Should treat a non-bearer scheme as no credential", func(t *testing.T) {
		r, _, _ := newRouter()
		rec := serve(r, "Token abc123")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Should return 401 with a challenge for a malformed token", func(t *testing.T) {
		r, _, _ := newRouter()
		rec := serve(r, "Bearer not-a-jwt")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		body := decodeBody(t, rec)
		assert.Equal(t, "Could not validate credentials", body.Message)
	})

	t.Run("Should return 401 for an expired token", func(t *testing.T) {
		expired, err := tokens.Mint(map[string]interface{}{"sub": userID.String()}, -time.Minute)
		require.NoError(t, err)

		r, _, _ := newRouter()
		rec := serve(r, "Bearer "+expired)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Token has expired", body.Message)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenService("other-secret", 30)
		forged, err := other.Mint(map[string]interface{}{"sub": userID.String()}, 0)
		require.NoError(t, err)

		r, _, _ := newRouter()
		rec := serve(r, "Bearer "+forged)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Could not validate credentials", body.Message)
	})

	t.Run("Should expose the subject in both contexts", func(t *testing.T) {
		token, err := tokens.Mint(map[string]interface{}{"sub": userID.String()}, 0)
		require.NoError(t, err)

		r, ginSubject, ctxSubject := newRouter()
		rec := serve(r, "Bearer "+token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID.String(), *ginSubject)
		assert.Equal(t, userID.String(), *ctxSubject)
	})

	t.Run("Should accept a lowercase bearer scheme", func(t *testing.T) {
		token, err := tokens.Mint(map[string]interface{}{"sub": userID.String()}, 0)
		require.NoError(t, err)

		r, _, _ := newRouter()
		rec := serve(r, "bearer "+token)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	newRouter := func(fail func(c *gin.Context)) *gin.Engine {
		r := gin.New()
		r.Use(middleware.ErrorHandler())
		r.GET("/boom", fail)
		return r
	}

	serve := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Should map a known error to its status and message", func(t *testing.T) {
		r := newRouter(func(c *gin.Context) {
			c.Error(apperror.NotFound("Job not found"))
		})
		rec := serve(r)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, "Job not found", body.Message)
	})

	t.Run("Should challenge on a 401 error", func(t *testing.T) {
		r := newRouter(func(c *gin.Context) {
			c.Error(apperror.Unauthorized("Token has expired"))
		})
		rec := serve(r)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("Should hide unexpected errors behind a generic message", func(t *testing.T) {
		r := newRouter(func(c *gin.Context) {
			c.Error(assert.AnError)
		})
		rec := serve(r)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "An unexpected error occurred. Please try again later.", body.Message)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestRequestID(t *testing.T) {
	newRouter := func() *gin.Engine {
		r := gin.New()
		r.Use(middleware.RequestID())
		r.GET("/ping", func(c *gin.Context) {
			response.Success(c, http.StatusOK, "pong", nil)
		})
		return r
	}

	t.Run("Should assign an id and echo it in header and body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get("X-Request-ID")
		require.NotEmpty(t, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)

		body := decodeBody(t, rec)
		assert.Equal(t, id, body.RequestID)
	})

	t.Run("Should keep a caller-supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "trace-42")
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "trace-42", decodeBody(t, rec).RequestID)
	})
}
