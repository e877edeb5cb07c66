package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type jobSourceUsecase struct {
	sourceRepo domain.JobSourceRepository
}

func NewJobSourceUsecase(sourceRepo domain.JobSourceRepository) domain.JobSourceUsecase {
	return &jobSourceUsecase{sourceRepo: sourceRepo}
}

func (u *jobSourceUsecase) CreateSource(ctx context.Context, source *domain.JobSource) (*domain.JobSource, error) {
	if strings.TrimSpace(source.Name) == "" {
		return nil, apperror.Unprocessable("Source name: this field is required")
	}
	if source.DisplayName == "" {
		source.DisplayName = source.Name
	}
	return u.sourceRepo.Create(ctx, source)
}

func (u *jobSourceUsecase) GetSource(ctx context.Context, id uuid.UUID) (*domain.JobSource, error) {
	return u.sourceRepo.GetByID(ctx, id)
}

func (u *jobSourceUsecase) ListSources(ctx context.Context, page domain.ListParams) ([]domain.JobSource, int64, error) {
	return u.sourceRepo.List(ctx, page)
}

func (u *jobSourceUsecase) UpdateSource(ctx context.Context, id uuid.UUID, update *domain.JobSourceUpdate) (*domain.JobSource, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, apperror.Unprocessable("Source name: this field is required")
	}
	return u.sourceRepo.Update(ctx, id, update)
}

func (u *jobSourceUsecase) DeleteSource(ctx context.Context, id uuid.UUID) error {
	return u.sourceRepo.Delete(ctx, id)
}
