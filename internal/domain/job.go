package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type JobListing struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Title     string    `json:"title"`

	Description      *string `json:"description,omitempty"`
	Requirements     *string `json:"requirements,omitempty"`
	Responsibilities *string `json:"responsibilities,omitempty"`
	Location         *string `json:"location,omitempty"`

	JobType         *JobType         `json:"job_type,omitempty"`
	RemoteType      *RemoteType      `json:"remote_type,omitempty"`
	ExperienceLevel *ExperienceLevel `json:"experience_level,omitempty"`

	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency"`

	SkillsRequired  StringList `json:"skills_required"`
	SkillsPreferred StringList `json:"skills_preferred"`
	Benefits        StringList `json:"benefits"`
	TechStack       StringList `json:"tech_stack"`

	EducationRequired *string `json:"education_required,omitempty"`
	JobURL            *string `json:"job_url,omitempty"`
	ApplicationURL    *string `json:"application_url,omitempty"`

	PostedDate          *time.Time `json:"posted_date,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	ScrapedAt           *time.Time `json:"scraped_at,omitempty"`

	Source             *string            `json:"source,omitempty"`
	Status             JobStatus          `json:"status"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	DataQualityScore   *float64           `json:"data_quality_score,omitempty"`

	SeniorityLevel      *SeniorityLevel      `json:"seniority_level,omitempty"`
	CompanySizeCategory *CompanySizeCategory `json:"company_size_category,omitempty"`

	// CanonicalID points a duplicate listing at its canonical row.
	CanonicalID *uuid.UUID `json:"canonical_id,omitempty"`
	SourceCount int        `json:"source_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobListingUpdate struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	Requirements     *string `json:"requirements,omitempty"`
	Responsibilities *string `json:"responsibilities,omitempty"`
	Location         *string `json:"location,omitempty"`

	JobType         *JobType         `json:"job_type,omitempty"`
	RemoteType      *RemoteType      `json:"remote_type,omitempty"`
	ExperienceLevel *ExperienceLevel `json:"experience_level,omitempty"`

	SalaryMin      *float64 `json:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max,omitempty"`
	SalaryCurrency *string  `json:"salary_currency,omitempty"`

	SkillsRequired  *StringList `json:"skills_required,omitempty"`
	SkillsPreferred *StringList `json:"skills_preferred,omitempty"`
	Benefits        *StringList `json:"benefits,omitempty"`
	TechStack       *StringList `json:"tech_stack,omitempty"`

	EducationRequired *string `json:"education_required,omitempty"`
	JobURL            *string `json:"job_url,omitempty"`
	ApplicationURL    *string `json:"application_url,omitempty"`

	PostedDate          *time.Time `json:"posted_date,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`

	Status             *JobStatus          `json:"status,omitempty"`
	VerificationStatus *VerificationStatus `json:"verification_status,omitempty"`
	DataQualityScore   *float64            `json:"data_quality_score,omitempty"`

	SeniorityLevel      *SeniorityLevel      `json:"seniority_level,omitempty"`
	CompanySizeCategory *CompanySizeCategory `json:"company_size_category,omitempty"`
	CanonicalID         *uuid.UUID           `json:"canonical_id,omitempty"`
}

type JobFilter struct {
	Status     *JobStatus
	CompanyID  *uuid.UUID
	JobType    *JobType
	RemoteType *RemoteType
}

type JobRepository interface {
	Create(ctx context.Context, job *JobListing) (*JobListing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*JobListing, error)
	List(ctx context.Context, filter JobFilter, page ListParams) ([]JobListing, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *JobListingUpdate) (*JobListing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *JobListing) (*JobListing, error)
	GetJob(ctx context.Context, id uuid.UUID) (*JobListing, error)
	ListJobs(ctx context.Context, filter JobFilter, page ListParams) ([]JobListing, int64, error)
	UpdateJob(ctx context.Context, id uuid.UUID, update *JobListingUpdate) (*JobListing, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
}
