package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type applicationUsecase struct {
	interactionRepo domain.InteractionRepository
}

func NewApplicationUsecase(interactionRepo domain.InteractionRepository) domain.ApplicationUsecase {
	return &applicationUsecase{interactionRepo: interactionRepo}
}

// CreateApplication records an interaction for the authenticated user. The
// owner always comes from the token subject, never from the request body.
func (u *applicationUsecase) CreateApplication(ctx context.Context, interaction *domain.JobUserInteraction) (*domain.JobUserInteraction, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	interaction.UserProfileID = userID

	if !interaction.InteractionType.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown interaction type %q", interaction.InteractionType))
	}
	if interaction.ApplicationStatus != "" && !interaction.ApplicationStatus.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown application status %q", interaction.ApplicationStatus))
	}

	now := time.Now().UTC()
	switch interaction.InteractionType {
	case domain.InteractionApplied:
		if interaction.ApplicationStatus == "" || interaction.ApplicationStatus == domain.ApplicationNotApplied {
			interaction.ApplicationStatus = domain.ApplicationApplied
		}
		if interaction.AppliedDate == nil {
			interaction.AppliedDate = &now
		}
	case domain.InteractionSaved:
		if interaction.SavedDate == nil {
			interaction.SavedDate = &now
		}
	}
	if interaction.ApplicationStatus == "" {
		interaction.ApplicationStatus = domain.ApplicationNotApplied
	}
	if interaction.InteractionCount < 1 {
		interaction.InteractionCount = 1
	}
	if interaction.FirstInteraction == nil {
		interaction.FirstInteraction = &now
	}
	if interaction.LastInteraction == nil {
		interaction.LastInteraction = &now
	}

	return u.interactionRepo.Create(ctx, interaction)
}

func (u *applicationUsecase) GetApplication(ctx context.Context, id uuid.UUID) (*domain.JobUserInteraction, error) {
	return u.ownedInteraction(ctx, id)
}

// ListApplications is always scoped to the authenticated user, whatever the
// caller put in the filter.
func (u *applicationUsecase) ListApplications(ctx context.Context, filter domain.InteractionFilter, page domain.ListParams) ([]domain.JobUserInteraction, int64, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.UserProfileID = &userID
	return u.interactionRepo.List(ctx, filter, page)
}

func (u *applicationUsecase) UpdateApplication(ctx context.Context, id uuid.UUID, update *domain.InteractionUpdate) (*domain.JobUserInteraction, error) {
	if _, err := u.ownedInteraction(ctx, id); err != nil {
		return nil, err
	}
	if update.ApplicationStatus != nil && !update.ApplicationStatus.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown application status %q", *update.ApplicationStatus))
	}
	return u.interactionRepo.Update(ctx, id, update)
}

func (u *applicationUsecase) DeleteApplication(ctx context.Context, id uuid.UUID) error {
	if _, err := u.ownedInteraction(ctx, id); err != nil {
		return err
	}
	return u.interactionRepo.Delete(ctx, id)
}

func (u *applicationUsecase) ownedInteraction(ctx context.Context, id uuid.UUID) (*domain.JobUserInteraction, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	interaction, err := u.interactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interaction.UserProfileID != userID {
		return nil, apperror.Forbidden("Not authorized to access this application")
	}
	return interaction, nil
}
