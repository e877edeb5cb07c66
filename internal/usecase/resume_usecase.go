package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

func (u *resumeUsecase) CreateResume(ctx context.Context, resume *domain.Resume) (*domain.Resume, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	resume.UserProfileID = userID

	if strings.TrimSpace(resume.Title) == "" {
		return nil, apperror.Unprocessable("Title: this field is required")
	}
	return u.resumeRepo.Create(ctx, resume)
}

func (u *resumeUsecase) GetResume(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	return u.ownedResume(ctx, id)
}

func (u *resumeUsecase) ListResumes(ctx context.Context, page domain.ListParams) ([]domain.Resume, int64, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, 0, err
	}
	return u.resumeRepo.ListByUser(ctx, userID, page)
}

func (u *resumeUsecase) UpdateResume(ctx context.Context, id uuid.UUID, update *domain.ResumeUpdate) (*domain.Resume, error) {
	if _, err := u.ownedResume(ctx, id); err != nil {
		return nil, err
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, apperror.Unprocessable("Title: this field is required")
	}
	return u.resumeRepo.Update(ctx, id, update)
}

func (u *resumeUsecase) DeleteResume(ctx context.Context, id uuid.UUID) error {
	if _, err := u.ownedResume(ctx, id); err != nil {
		return err
	}
	return u.resumeRepo.Delete(ctx, id)
}

func (u *resumeUsecase) ownedResume(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	resume, err := u.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume.UserProfileID != userID {
		return nil, apperror.Forbidden("Not authorized to access this resume")
	}
	return resume, nil
}
