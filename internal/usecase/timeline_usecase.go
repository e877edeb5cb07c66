package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type timelineUsecase struct {
	timelineRepo domain.TimelineRepository
}

func NewTimelineUsecase(timelineRepo domain.TimelineRepository) domain.TimelineUsecase {
	return &timelineUsecase{timelineRepo: timelineRepo}
}

func (u *timelineUsecase) CreateEvent(ctx context.Context, event *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	event.UserProfileID = userID

	if !event.EventType.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown event type %q", event.EventType))
	}
	if strings.TrimSpace(event.Title) == "" {
		return nil, apperror.Unprocessable("Title: this field is required")
	}
	if event.EventDate.IsZero() {
		event.EventDate = time.Now().UTC()
	}

	return u.timelineRepo.Create(ctx, event)
}

func (u *timelineUsecase) GetEvent(ctx context.Context, id uuid.UUID) (*domain.TimelineEvent, error) {
	return u.ownedEvent(ctx, id)
}

func (u *timelineUsecase) ListEvents(ctx context.Context, filter domain.TimelineFilter, page domain.ListParams) ([]domain.TimelineEvent, int64, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.UserProfileID = &userID
	return u.timelineRepo.List(ctx, filter, page)
}

func (u *timelineUsecase) UpdateEvent(ctx context.Context, id uuid.UUID, update *domain.TimelineEventUpdate) (*domain.TimelineEvent, error) {
	if _, err := u.ownedEvent(ctx, id); err != nil {
		return nil, err
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, apperror.Unprocessable("Title: this field is required")
	}
	return u.timelineRepo.Update(ctx, id, update)
}

func (u *timelineUsecase) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := u.ownedEvent(ctx, id); err != nil {
		return err
	}
	return u.timelineRepo.Delete(ctx, id)
}

func (u *timelineUsecase) ownedEvent(ctx context.Context, id uuid.UUID) (*domain.TimelineEvent, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	event, err := u.timelineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.UserProfileID != userID {
		return nil, apperror.Forbidden("Not authorized to access this timeline event")
	}
	return event, nil
}
