package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, hashed_password, is_active, is_verified, last_login,
	first_name, last_name, phone, city, state, linkedin_url, portfolio_url,
	current_title, experience_years, education, bio,
	preferred_locations, preferred_job_types, preferred_remote_types,
	desired_salary_min, desired_salary_max, created_at, updated_at`

func (r *userRepo) Create(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	// id/created_at/updated_at come from column defaults; any id the
	// caller pre-assigned is not preserved.
	query := `INSERT INTO user_profiles
		(email, hashed_password, is_active, is_verified,
		 first_name, last_name, phone, city, state, linkedin_url, portfolio_url,
		 current_title, experience_years, education, bio,
		 preferred_locations, preferred_job_types, preferred_remote_types,
		 desired_salary_min, desired_salary_max)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`

	var rawID string
	err := r.db.QueryRow(ctx, query,
		user.Email, user.HashedPassword, user.IsActive, user.IsVerified,
		user.FirstName, user.LastName, user.Phone, user.City, user.State,
		user.LinkedinURL, user.PortfolioURL, user.CurrentTitle,
		user.ExperienceYears, user.Education, user.Bio,
		pq.Array([]string(user.PreferredLocations)),
		pq.Array([]string(user.PreferredJobTypes)),
		pq.Array([]string(user.PreferredRemoteTypes)),
		user.DesiredSalaryMin, user.DesiredSalaryMax,
	).Scan(&rawID)
	if err != nil {
		return nil, translateError(err, "user")
	}

	id, err := parseID(rawID, "user")
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM user_profiles WHERE id = $1`, idString(id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM user_profiles WHERE email = $1`, email)
}

func (r *userRepo) getOne(ctx context.Context, query string, arg interface{}) (*domain.UserProfile, error) {
	var (
		user      domain.UserProfile
		rawID     string
		locations []string
		jobTypes  []string
		remote    []string
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&rawID, &user.Email, &user.HashedPassword, &user.IsActive, &user.IsVerified, &user.LastLogin,
		&user.FirstName, &user.LastName, &user.Phone, &user.City, &user.State,
		&user.LinkedinURL, &user.PortfolioURL, &user.CurrentTitle,
		&user.ExperienceYears, &user.Education, &user.Bio,
		pq.Array(&locations), pq.Array(&jobTypes), pq.Array(&remote),
		&user.DesiredSalaryMin, &user.DesiredSalaryMax,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "user")
	}

	id, err := parseID(rawID, "user")
	if err != nil {
		return nil, err
	}
	user.ID = id
	user.PreferredLocations = toStringList(locations)
	user.PreferredJobTypes = toStringList(jobTypes)
	user.PreferredRemoteTypes = toStringList(remote)
	return &user, nil
}

func (r *userRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE user_profiles SET last_login = $2, updated_at = NOW() WHERE id = $1`,
		idString(id), at.UTC(),
	)
	if err != nil {
		return translateError(err, "user")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}
