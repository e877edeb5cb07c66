package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Resume and SkillBank are user-owned aggregates of nested sections
// (contact info, work experience, skills, content variations). The core
// treats the document as opaque: it must round-trip losslessly, nothing
// inside it is interpreted here.

type Resume struct {
	ID            uuid.UUID `json:"id"`
	UserProfileID uuid.UUID `json:"user_profile_id"`
	Title         string    `json:"title"`
	Content       JSONMap   `json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ResumeUpdate struct {
	Title   *string  `json:"title,omitempty"`
	Content *JSONMap `json:"content,omitempty"`
}

// SkillBank is one-per-user.
type SkillBank struct {
	ID            uuid.UUID `json:"id"`
	UserProfileID uuid.UUID `json:"user_profile_id"`
	Content       JSONMap   `json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) (*Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Resume, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page ListParams) ([]Resume, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *ResumeUpdate) (*Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type SkillBankRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*SkillBank, error)
	Upsert(ctx context.Context, bank *SkillBank) (*SkillBank, error)
}

type ResumeUsecase interface {
	CreateResume(ctx context.Context, resume *Resume) (*Resume, error)
	GetResume(ctx context.Context, id uuid.UUID) (*Resume, error)
	ListResumes(ctx context.Context, page ListParams) ([]Resume, int64, error)
	UpdateResume(ctx context.Context, id uuid.UUID, update *ResumeUpdate) (*Resume, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
}

type SkillBankUsecase interface {
	GetSkillBank(ctx context.Context, userID uuid.UUID) (*SkillBank, error)
	UpdateSkillBank(ctx context.Context, userID uuid.UUID, content JSONMap) (*SkillBank, error)
}
