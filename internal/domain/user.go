package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserProfile is the account record plus the career-profile fields a user
// fills in over time. HashedPassword never serializes.
type UserProfile struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	IsActive       bool       `json:"is_active"`
	IsVerified     bool       `json:"is_verified"`
	LastLogin      *time.Time `json:"last_login,omitempty"`

	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	City            *string `json:"city,omitempty"`
	State           *string `json:"state,omitempty"`
	LinkedinURL     *string `json:"linkedin_url,omitempty"`
	PortfolioURL    *string `json:"portfolio_url,omitempty"`
	CurrentTitle    *string `json:"current_title,omitempty"`
	ExperienceYears *int    `json:"experience_years,omitempty"`
	Education       *string `json:"education,omitempty"`
	Bio             *string `json:"bio,omitempty"`

	PreferredLocations   StringList `json:"preferred_locations"`
	PreferredJobTypes    StringList `json:"preferred_job_types"`
	PreferredRemoteTypes StringList `json:"preferred_remote_types"`

	DesiredSalaryMin *float64 `json:"desired_salary_min,omitempty"`
	DesiredSalaryMax *float64 `json:"desired_salary_max,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *UserProfile) (*UserProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*UserProfile, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type AuthUsecase interface {
	Register(ctx context.Context, email, password string, firstName, lastName *string) (*UserProfile, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Refresh(ctx context.Context, userID string) (token string, err error)
	GetCurrentUser(ctx context.Context, userID string) (*UserProfile, error)
}
