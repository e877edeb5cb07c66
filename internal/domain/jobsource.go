package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type JobSource struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	BaseURL     string    `json:"base_url"`

	APIAvailable    bool       `json:"api_available"`
	ScrapingRules   JSONMap    `json:"scraping_rules"`
	RateLimitConfig JSONMap    `json:"rate_limit_config"`
	LastScraped     *time.Time `json:"last_scraped,omitempty"`
	IsActive        bool       `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type JobSourceUpdate struct {
	Name            *string    `json:"name,omitempty"`
	DisplayName     *string    `json:"display_name,omitempty"`
	BaseURL         *string    `json:"base_url,omitempty"`
	APIAvailable    *bool      `json:"api_available,omitempty"`
	ScrapingRules   *JSONMap   `json:"scraping_rules,omitempty"`
	RateLimitConfig *JSONMap   `json:"rate_limit_config,omitempty"`
	LastScraped     *time.Time `json:"last_scraped,omitempty"`
	IsActive        *bool      `json:"is_active,omitempty"`
}

type JobSourceRepository interface {
	Create(ctx context.Context, source *JobSource) (*JobSource, error)
	GetByID(ctx context.Context, id uuid.UUID) (*JobSource, error)
	List(ctx context.Context, page ListParams) ([]JobSource, int64, error)
	Update(ctx context.Context, id uuid.UUID, update *JobSourceUpdate) (*JobSource, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type JobSourceUsecase interface {
	CreateSource(ctx context.Context, source *JobSource) (*JobSource, error)
	GetSource(ctx context.Context, id uuid.UUID) (*JobSource, error)
	ListSources(ctx context.Context, page ListParams) ([]JobSource, int64, error)
	UpdateSource(ctx context.Context, id uuid.UUID, update *JobSourceUpdate) (*JobSource, error)
	DeleteSource(ctx context.Context, id uuid.UUID) error
}
