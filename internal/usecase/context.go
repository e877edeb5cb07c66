package usecase

import (
	"context"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

// currentUserID reads the authenticated subject the auth middleware put on
// the context. Fails safe when the key is missing or malformed.
func currentUserID(ctx context.Context) (uuid.UUID, error) {
	raw, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, apperror.Unauthorized("User not authenticated")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Unauthorized("User not authenticated")
	}
	return id, nil
}
