package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TimelineEvent struct {
	ID            uuid.UUID         `json:"id"`
	UserProfileID uuid.UUID         `json:"user_profile_id"`
	EventType     TimelineEventType `json:"event_type"`
	Title         string            `json:"title"`

	Description   *string    `json:"description,omitempty"`
	JobID         *uuid.UUID `json:"job_id,omitempty"`
	ApplicationID *uuid.UUID `json:"application_id,omitempty"`

	EventData   JSONMap   `json:"event_data"`
	EventDate   time.Time `json:"event_date"`
	IsMilestone bool      `json:"is_milestone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TimelineEventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	EventData   *JSONMap   `json:"event_data,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	IsMilestone *bool      `json:"is_milestone,omitempty"`
}

type TimelineFilter struct {
	UserProfileID *uuid.UUID
	EventType     *TimelineEventType
	IsMilestone   *bool
	JobID         *uuid.UUID
}

type TimelineRepository interface {
	Create(ctx context.Context, event *TimelineEvent) (*TimelineEvent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TimelineEvent, error)
	List(ctx context.Context, filter TimelineFilter, page ListParams) ([]TimelineEvent, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *TimelineEventUpdate) (*TimelineEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimelineUsecase interface {
	CreateEvent(ctx context.Context, event *TimelineEvent) (*TimelineEvent, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*TimelineEvent, error)
	ListEvents(ctx context.Context, filter TimelineFilter, page ListParams) ([]TimelineEvent, int64, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, update *TimelineEventUpdate) (*TimelineEvent, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}
