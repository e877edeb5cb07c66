package auth_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpilot-backend/pkg/apperror"
	"go-jobpilot-backend/pkg/auth"
)

func TestHasher(t *testing.T) {
	hasher := auth.NewHasher(4) // low cost keeps the test fast
	ctx := context.Background()

	t.Run("Should verify the original password", func(t *testing.T) {
		digest, err := hasher.Hash(ctx, "correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, hasher.Verify(ctx, "correct horse battery staple", digest))
	})

	t.Run("Should reject a wrong password", func(t *testing.T) {
		digest, err := hasher.Hash(ctx, "password-one")
		require.NoError(t, err)
		assert.False(t, hasher.Verify(ctx, "password-two", digest))
	})

	t.Run("Should salt digests so repeats differ but both verify", func(t *testing.T) {
		first, err := hasher.Hash(ctx, "same input")
		require.NoError(t, err)
		second, err := hasher.Hash(ctx, "same input")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Verify(ctx, "same input", first))
		assert.True(t, hasher.Verify(ctx, "same input", second))
	})

	t.Run("Should fail safe on empty or malformed inputs", func(t *testing.T) {
		digest, err := hasher.Hash(ctx, "anything")
		require.NoError(t, err)

		assert.False(t, hasher.Verify(ctx, "", digest))
		assert.False(t, hasher.Verify(ctx, "anything", ""))
		assert.False(t, hasher.Verify(ctx, "anything", "not-a-bcrypt-digest"))
	})
}

func TestTokenService(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", 30)

	t.Run("Should round-trip the subject", func(t *testing.T) {
		token, err := tokens.Mint(map[string]interface{}{"sub": "user-123"}, 0)
		require.NoError(t, err)

		sub, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", sub)
	})

	t.Run("Should treat an empty token as missing credentials", func(t *testing.T) {
		_, err := tokens.Validate("")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		assert.Equal(t, "Not authenticated", appErr.Message)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		token, err := tokens.Mint(map[string]interface{}{"sub": "user-123"}, -time.Minute)
		require.NoError(t, err)

		_, err = tokens.Validate(token)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Equal(t, "Token has expired", appErr.Message)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenService("different-secret", 30)
		token, err := other.Mint(map[string]interface{}{"sub": "user-123"}, 0)
		require.NoError(t, err)

		_, err = tokens.Validate(token)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		assert.Equal(t, "Could not validate credentials", appErr.Message)
	})

	t.Run("Should reject a token without a subject", func(t *testing.T) {
		token, err := tokens.Mint(map[string]interface{}{"scope": "none"}, 0)
		require.NoError(t, err)

		_, err = tokens.Validate(token)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := tokens.Validate("not.a.jwt")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})

	t.Run("Should not mutate the caller's claims map", func(t *testing.T) {
		claims := map[string]interface{}{"sub": "user-123"}
		_, err := tokens.Mint(claims, 0)
		require.NoError(t, err)

		_, hasExp := claims["exp"]
		assert.False(t, hasExp)
	})
}
