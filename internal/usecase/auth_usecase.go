package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
	"go-jobpilot-backend/pkg/auth"
	"go-jobpilot-backend/pkg/logger"
)

type authUsecase struct {
	userRepo domain.UserRepository
	hasher   *auth.Hasher
	tokens   *auth.TokenService
}

func NewAuthUsecase(userRepo domain.UserRepository, hasher *auth.Hasher, tokens *auth.TokenService) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, hasher: hasher, tokens: tokens}
}

func (u *authUsecase) Register(ctx context.Context, email, password string, firstName, lastName *string) (*domain.UserProfile, error) {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) || appErr.Code != 404 {
			return nil, err
		}
	}
	if existing != nil {
		return nil, apperror.BadRequest("User with this email already exists")
	}

	digest, err := u.hasher.Hash(ctx, password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.UserProfile{
		Email:          email,
		HashedPassword: digest,
		IsActive:       true,
		IsVerified:     false,
		FirstName:      firstName,
		LastName:       lastName,
	}

	// The DB unique key is the real arbiter: two registrations racing on
	// the same email produce one winner and one conflict here.
	return u.userRepo.Create(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == 404 {
			return "", apperror.Unauthorized("Incorrect email or password")
		}
		return "", err
	}

	if !user.IsActive {
		return "", apperror.Unauthorized("User account is inactive")
	}

	if !u.hasher.Verify(ctx, password, user.HashedPassword) {
		return "", apperror.Unauthorized("Incorrect email or password")
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		// Login still succeeds; the timestamp is best-effort bookkeeping.
		logger.Log.Warn("failed to update last_login", "user_id", user.ID, "error", err)
	}

	return u.tokens.Mint(map[string]interface{}{"sub": user.ID.String()}, 0)
}

func (u *authUsecase) Refresh(ctx context.Context, userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", apperror.Unauthorized("Could not validate credentials")
	}
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return "", apperror.Unauthorized("Could not validate credentials")
	}
	if !user.IsActive {
		return "", apperror.Unauthorized("User account is inactive")
	}
	return u.tokens.Mint(map[string]interface{}{"sub": user.ID.String()}, 0)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperror.Unauthorized("Could not validate credentials")
	}
	return u.userRepo.GetByID(ctx, id)
}
