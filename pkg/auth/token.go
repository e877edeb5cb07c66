package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-jobpilot-backend/pkg/apperror"
)

// TokenService mints and validates self-contained HS256 bearer tokens.
// No server-side session state: a token carries its subject and expiry.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Mint signs the given claims with exp = now + ttl. A zero ttl uses the
// configured default expiry. The claims map is copied, never mutated.
func (s *TokenService) Mint(claims map[string]interface{}, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.expiry
	}

	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = time.Now().UTC().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a bearer token and returns its subject.
// Failure modes are categorical:
//   - empty token: 403 (no credentials presented)
//   - expired token: 401 "Token has expired"
//   - anything else (bad signature, malformed, missing sub): 401
func (s *TokenService) Validate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperror.Forbidden("Not authenticated")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperror.TokenExpired()
		}
		return "", apperror.Unauthorized("Could not validate credentials")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperror.Unauthorized("Could not validate credentials")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", apperror.Unauthorized("Could not validate credentials")
	}
	return sub, nil
}
