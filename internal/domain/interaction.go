package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobUserInteraction records one interaction of a given type between a user
// and a job, and doubles as the application record when the type is
// "applied". The (user, job, type) triple is unique in the store.
type JobUserInteraction struct {
	ID              uuid.UUID       `json:"id"`
	UserProfileID   uuid.UUID       `json:"user_profile_id"`
	JobID           uuid.UUID       `json:"job_id"`
	InteractionType InteractionType `json:"interaction_type"`

	ApplicationStatus  ApplicationStatus `json:"application_status"`
	AppliedDate        *time.Time        `json:"applied_date,omitempty"`
	ResponseDate       *time.Time        `json:"response_date,omitempty"`
	FollowUpDate       *time.Time        `json:"follow_up_date,omitempty"`
	InterviewScheduled *time.Time        `json:"interview_scheduled,omitempty"`
	SavedDate          *time.Time        `json:"saved_date,omitempty"`

	ResumeVersion *string `json:"resume_version,omitempty"`
	CoverLetter   *string `json:"cover_letter,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	InteractionCount int        `json:"interaction_count"`
	FirstInteraction *time.Time `json:"first_interaction,omitempty"`
	LastInteraction  *time.Time `json:"last_interaction,omitempty"`

	// JobSnapshot denormalizes the listing at interaction time so the
	// record survives listing edits and deletions of the canonical row.
	JobSnapshot JSONMap `json:"job_snapshot"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InteractionUpdate struct {
	ApplicationStatus  *ApplicationStatus `json:"application_status,omitempty"`
	AppliedDate        *time.Time         `json:"applied_date,omitempty"`
	ResponseDate       *time.Time         `json:"response_date,omitempty"`
	FollowUpDate       *time.Time         `json:"follow_up_date,omitempty"`
	InterviewScheduled *time.Time         `json:"interview_scheduled,omitempty"`
	ResumeVersion      *string            `json:"resume_version,omitempty"`
	CoverLetter        *string            `json:"cover_letter,omitempty"`
	Notes              *string            `json:"notes,omitempty"`
}

type InteractionFilter struct {
	UserProfileID   *uuid.UUID
	JobID           *uuid.UUID
	InteractionType *InteractionType
	Status          *ApplicationStatus
}

type InteractionRepository interface {
	Create(ctx context.Context, interaction *JobUserInteraction) (*JobUserInteraction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*JobUserInteraction, error)
	List(ctx context.Context, filter InteractionFilter, page ListParams) ([]JobUserInteraction, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *InteractionUpdate) (*JobUserInteraction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicationUsecase interface {
	CreateApplication(ctx context.Context, interaction *JobUserInteraction) (*JobUserInteraction, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*JobUserInteraction, error)
	ListApplications(ctx context.Context, filter InteractionFilter, page ListParams) ([]JobUserInteraction, int64, error)
	UpdateApplication(ctx context.Context, id uuid.UUID, update *InteractionUpdate) (*JobUserInteraction, error)
	DeleteApplication(ctx context.Context, id uuid.UUID) error
}
