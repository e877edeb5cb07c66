package usecase

import (
	"context"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type skillBankUsecase struct {
	bankRepo domain.SkillBankRepository
}

func NewSkillBankUsecase(bankRepo domain.SkillBankRepository) domain.SkillBankUsecase {
	return &skillBankUsecase{bankRepo: bankRepo}
}

func (u *skillBankUsecase) GetSkillBank(ctx context.Context, userID uuid.UUID) (*domain.SkillBank, error) {
	if err := u.requireOwner(ctx, userID); err != nil {
		return nil, err
	}
	return u.bankRepo.GetByUserID(ctx, userID)
}

func (u *skillBankUsecase) UpdateSkillBank(ctx context.Context, userID uuid.UUID, content domain.JSONMap) (*domain.SkillBank, error) {
	if err := u.requireOwner(ctx, userID); err != nil {
		return nil, err
	}
	if content == nil {
		content = domain.JSONMap{}
	}
	return u.bankRepo.Upsert(ctx, &domain.SkillBank{
		UserProfileID: userID,
		Content:       content,
	})
}

// requireOwner rejects access to another user's skill bank even when the
// target user does not exist, so the endpoint leaks nothing about accounts.
func (u *skillBankUsecase) requireOwner(ctx context.Context, userID uuid.UUID) error {
	subject, err := currentUserID(ctx)
	if err != nil {
		return err
	}
	if subject != userID {
		return apperror.Forbidden("Not authorized to access this skill bank")
	}
	return nil
}
