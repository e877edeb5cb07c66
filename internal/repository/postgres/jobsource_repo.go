package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type jobSourceRepo struct {
	db *pgxpool.Pool
}

func NewJobSourceRepository(db *pgxpool.Pool) domain.JobSourceRepository {
	return &jobSourceRepo{db: db}
}

const jobSourceColumns = `id, name, display_name, base_url, api_available,
	scraping_rules, rate_limit_config, last_scraped, is_active,
	created_at, updated_at`

func (r *jobSourceRepo) Create(ctx context.Context, source *domain.JobSource) (*domain.JobSource, error) {
	rules, err := jsonbValue(source.ScrapingRules)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	rateLimits, err := jsonbValue(source.RateLimitConfig)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	query := `INSERT INTO job_sources
		(name, display_name, base_url, api_available, scraping_rules, rate_limit_config, last_scraped, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var rawID string
	err = r.db.QueryRow(ctx, query,
		source.Name, source.DisplayName, source.BaseURL, source.APIAvailable,
		rules, rateLimits, source.LastScraped, source.IsActive,
	).Scan(&rawID)
	if err != nil {
		return nil, translateError(err, "job source")
	}

	id, err := parseID(rawID, "job source")
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *jobSourceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobSource, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobSourceColumns+` FROM job_sources WHERE id = $1`, idString(id))
	return scanJobSource(row)
}

func (r *jobSourceRepo) List(ctx context.Context, page domain.ListParams) ([]domain.JobSource, int64, error) {
	page = page.Clamp()

	query := fmt.Sprintf(`SELECT %s FROM job_sources ORDER BY name LIMIT $1 OFFSET $2`, jobSourceColumns)
	rows, err := r.db.Query(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, translateError(err, "job source")
	}
	defer rows.Close()

	var sources []domain.JobSource
	for rows.Next() {
		source, err := scanJobSource(rows)
		if err != nil {
			return nil, 0, err
		}
		sources = append(sources, *source)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "job source")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_sources`).Scan(&total); err != nil {
		return nil, 0, translateError(err, "job source")
	}

	return sources, total, nil
}

func (r *jobSourceRepo) Update(ctx context.Context, id uuid.UUID, update *domain.JobSourceUpdate) (*domain.JobSource, error) {
	b := newUpdateBuilder()
	if update.Name != nil {
		b.Set("name", *update.Name)
	}
	if update.DisplayName != nil {
		b.Set("display_name", *update.DisplayName)
	}
	if update.BaseURL != nil {
		b.Set("base_url", *update.BaseURL)
	}
	if update.APIAvailable != nil {
		b.Set("api_available", *update.APIAvailable)
	}
	if update.ScrapingRules != nil {
		rules, err := jsonbValue(*update.ScrapingRules)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		b.Set("scraping_rules", rules)
	}
	if update.RateLimitConfig != nil {
		rateLimits, err := jsonbValue(*update.RateLimitConfig)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		b.Set("rate_limit_config", rateLimits)
	}
	if update.LastScraped != nil {
		b.Set("last_scraped", *update.LastScraped)
	}
	if update.IsActive != nil {
		b.Set("is_active", *update.IsActive)
	}

	if b.Empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.Query("job_sources", idString(id))
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "job source")
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NotFound("job source not found")
	}
	return r.GetByID(ctx, id)
}

func (r *jobSourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_sources WHERE id = $1`, idString(id))
	if err != nil {
		return translateError(err, "job source")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("job source not found")
	}
	return nil
}

func scanJobSource(row rowScanner) (*domain.JobSource, error) {
	var (
		source        domain.JobSource
		rawID         string
		rawRules      []byte
		rawRateLimits []byte
	)
	err := row.Scan(
		&rawID, &source.Name, &source.DisplayName, &source.BaseURL, &source.APIAvailable,
		&rawRules, &rawRateLimits, &source.LastScraped, &source.IsActive,
		&source.CreatedAt, &source.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "job source")
	}

	id, err := parseID(rawID, "job source")
	if err != nil {
		return nil, err
	}
	rules, err := toJSONMap(rawRules, "job source", "scraping_rules")
	if err != nil {
		return nil, err
	}
	rateLimits, err := toJSONMap(rawRateLimits, "job source", "rate_limit_config")
	if err != nil {
		return nil, err
	}

	source.ID = id
	source.ScrapingRules = rules
	source.RateLimitConfig = rateLimits
	return &source, nil
}
