package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NormalizedName string    `json:"normalized_name"`

	Domain       *string              `json:"domain,omitempty"`
	Industry     *string              `json:"industry,omitempty"`
	Size         *string              `json:"size,omitempty"`
	SizeCategory *CompanySizeCategory `json:"size_category,omitempty"`
	Location     *string              `json:"location,omitempty"`
	FoundedYear  *int                 `json:"founded_year,omitempty"`
	Website      *string              `json:"website,omitempty"`
	Description  *string              `json:"description,omitempty"`
	Culture      *string              `json:"culture,omitempty"`

	Values   StringList `json:"values"`
	Benefits StringList `json:"benefits"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyUpdate is the set-mask for partial updates: nil means the caller
// did not touch the field.
type CompanyUpdate struct {
	Name         *string              `json:"name,omitempty"`
	Domain       *string              `json:"domain,omitempty"`
	Industry     *string              `json:"industry,omitempty"`
	Size         *string              `json:"size,omitempty"`
	SizeCategory *CompanySizeCategory `json:"size_category,omitempty"`
	Location     *string              `json:"location,omitempty"`
	FoundedYear  *int                 `json:"founded_year,omitempty"`
	Website      *string              `json:"website,omitempty"`
	Description  *string              `json:"description,omitempty"`
	Culture      *string              `json:"culture,omitempty"`
	Values       *StringList          `json:"values,omitempty"`
	Benefits     *StringList          `json:"benefits,omitempty"`
}

type CompanyFilter struct {
	Industry     *string
	SizeCategory *CompanySizeCategory
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) (*Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Company, error)
	List(ctx context.Context, filter CompanyFilter, page ListParams) ([]Company, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *CompanyUpdate) (*Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, company *Company) (*Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*Company, error)
	ListCompanies(ctx context.Context, filter CompanyFilter, page ListParams) ([]Company, int64, error)
	UpdateCompany(ctx context.Context, id uuid.UUID, update *CompanyUpdate) (*Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}
