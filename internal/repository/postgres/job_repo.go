package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, company_id, title, description, requirements, responsibilities, location,
	job_type, remote_type, experience_level,
	salary_min, salary_max, salary_currency,
	skills_required, skills_preferred, benefits, tech_stack,
	education_required, job_url, application_url,
	posted_date, application_deadline, scraped_at,
	source, status, verification_status, data_quality_score,
	seniority_level, company_size_category, canonical_id, source_count,
	created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.JobListing) (*domain.JobListing, error) {
	query := `INSERT INTO jobs
		(company_id, title, description, requirements, responsibilities, location,
		 job_type, remote_type, experience_level,
		 salary_min, salary_max, salary_currency,
		 skills_required, skills_preferred, benefits, tech_stack,
		 education_required, job_url, application_url,
		 posted_date, application_deadline, scraped_at,
		 source, status, verification_status, data_quality_score,
		 seniority_level, company_size_category, canonical_id, source_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
		RETURNING id`

	status := job.Status
	if status == "" {
		status = domain.JobStatusActive
	}
	verification := job.VerificationStatus
	if verification == "" {
		verification = domain.VerificationUnverified
	}
	currency := job.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}
	sourceCount := job.SourceCount
	if sourceCount < 1 {
		sourceCount = 1
	}

	var rawID string
	err := r.db.QueryRow(ctx, query,
		idString(job.CompanyID), job.Title, job.Description, job.Requirements,
		job.Responsibilities, job.Location,
		job.JobType, job.RemoteType, job.ExperienceLevel,
		job.SalaryMin, job.SalaryMax, currency,
		pq.Array([]string(job.SkillsRequired)), pq.Array([]string(job.SkillsPreferred)),
		pq.Array([]string(job.Benefits)), pq.Array([]string(job.TechStack)),
		job.EducationRequired, job.JobURL, job.ApplicationURL,
		job.PostedDate, job.ApplicationDeadline, job.ScrapedAt,
		job.Source, status, verification, job.DataQualityScore,
		job.SeniorityLevel, job.CompanySizeCategory,
		optionalIDString(job.CanonicalID), sourceCount,
	).Scan(&rawID)
	if err != nil {
		return nil, translateError(err, "job")
	}

	id, err := parseID(rawID, "job")
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobListing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, idString(id))
	return scanJob(row)
}

func (r *jobRepo) List(ctx context.Context, filter domain.JobFilter, page domain.ListParams) ([]domain.JobListing, int64, error) {
	page = page.Clamp()

	where, args := jobFilterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM jobs %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, 0, translateError(err, "job")
	}
	defer rows.Close()

	var jobs []domain.JobListing
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "job")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs `+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err, "job")
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, id uuid.UUID, update *domain.JobListingUpdate) (*domain.JobListing, error) {
	b := newUpdateBuilder()
	if update.Title != nil {
		b.Set("title", *update.Title)
	}
	if update.Description != nil {
		b.Set("description", *update.Description)
	}
	if update.Requirements != nil {
		b.Set("requirements", *update.Requirements)
	}
	if update.Responsibilities != nil {
		b.Set("responsibilities", *update.Responsibilities)
	}
	if update.Location != nil {
		b.Set("location", *update.Location)
	}
	if update.JobType != nil {
		b.Set("job_type", *update.JobType)
	}
	if update.RemoteType != nil {
		b.Set("remote_type", *update.RemoteType)
	}
	if update.ExperienceLevel != nil {
		b.Set("experience_level", *update.ExperienceLevel)
	}
	if update.SalaryMin != nil {
		b.Set("salary_min", *update.SalaryMin)
	}
	if update.SalaryMax != nil {
		b.Set("salary_max", *update.SalaryMax)
	}
	if update.SalaryCurrency != nil {
		b.Set("salary_currency", *update.SalaryCurrency)
	}
	if update.SkillsRequired != nil {
		b.Set("skills_required", pq.Array([]string(*update.SkillsRequired)))
	}
	if update.SkillsPreferred != nil {
		b.Set("skills_preferred", pq.Array([]string(*update.SkillsPreferred)))
	}
	if update.Benefits != nil {
		b.Set("benefits", pq.Array([]string(*update.Benefits)))
	}
	if update.TechStack != nil {
		b.Set("tech_stack", pq.Array([]string(*update.TechStack)))
	}
	if update.EducationRequired != nil {
		b.Set("education_required", *update.EducationRequired)
	}
	if update.JobURL != nil {
		b.Set("job_url", *update.JobURL)
	}
	if update.ApplicationURL != nil {
		b.Set("application_url", *update.ApplicationURL)
	}
	if update.PostedDate != nil {
		b.Set("posted_date", *update.PostedDate)
	}
	if update.ApplicationDeadline != nil {
		b.Set("application_deadline", *update.ApplicationDeadline)
	}
	if update.Status != nil {
		b.Set("status", *update.Status)
	}
	if update.VerificationStatus != nil {
		b.Set("verification_status", *update.VerificationStatus)
	}
	if update.DataQualityScore != nil {
		b.Set("data_quality_score", *update.DataQualityScore)
	}
	if update.SeniorityLevel != nil {
		b.Set("seniority_level", *update.SeniorityLevel)
	}
	if update.CompanySizeCategory != nil {
		b.Set("company_size_category", *update.CompanySizeCategory)
	}
	if update.CanonicalID != nil {
		b.Set("canonical_id", idString(*update.CanonicalID))
	}

	if b.Empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.Query("jobs", idString(id))
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "job")
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NotFound("job not found")
	}
	return r.GetByID(ctx, id)
}

func (r *jobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, idString(id))
	if err != nil {
		return translateError(err, "job")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("job not found")
	}
	return nil
}

func jobFilterClause(filter domain.JobFilter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CompanyID != nil {
		args = append(args, idString(*filter.CompanyID))
		clauses = append(clauses, fmt.Sprintf("company_id = $%d", len(args)))
	}
	if filter.JobType != nil {
		args = append(args, *filter.JobType)
		clauses = append(clauses, fmt.Sprintf("job_type = $%d", len(args)))
	}
	if filter.RemoteType != nil {
		args = append(args, *filter.RemoteType)
		clauses = append(clauses, fmt.Sprintf("remote_type = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func scanJob(row rowScanner) (*domain.JobListing, error) {
	var (
		job            domain.JobListing
		rawID          string
		rawCompanyID   string
		rawCanonicalID *string
		skillsReq      []string
		skillsPref     []string
		benefits       []string
		techStack      []string
	)
	err := row.Scan(
		&rawID, &rawCompanyID, &job.Title, &job.Description, &job.Requirements,
		&job.Responsibilities, &job.Location,
		&job.JobType, &job.RemoteType, &job.ExperienceLevel,
		&job.SalaryMin, &job.SalaryMax, &job.SalaryCurrency,
		pq.Array(&skillsReq), pq.Array(&skillsPref), pq.Array(&benefits), pq.Array(&techStack),
		&job.EducationRequired, &job.JobURL, &job.ApplicationURL,
		&job.PostedDate, &job.ApplicationDeadline, &job.ScrapedAt,
		&job.Source, &job.Status, &job.VerificationStatus, &job.DataQualityScore,
		&job.SeniorityLevel, &job.CompanySizeCategory, &rawCanonicalID, &job.SourceCount,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "job")
	}

	id, err := parseID(rawID, "job")
	if err != nil {
		return nil, err
	}
	companyID, err := parseID(rawCompanyID, "job")
	if err != nil {
		return nil, err
	}
	canonicalID, err := parseOptionalID(rawCanonicalID, "job")
	if err != nil {
		return nil, err
	}

	job.ID = id
	job.CompanyID = companyID
	job.CanonicalID = canonicalID
	job.SkillsRequired = toStringList(skillsReq)
	job.SkillsPreferred = toStringList(skillsPref)
	job.Benefits = toStringList(benefits)
	job.TechStack = toStringList(techStack)

	if err := checkJobEnums(&job, rawID); err != nil {
		return nil, err
	}
	return &job, nil
}

// checkJobEnums rejects rows holding values outside the declared enum
// domains. Constraints should prevent these; a hit means the store was
// written around the API.
func checkJobEnums(job *domain.JobListing, rawID string) error {
	if !job.Status.Valid() {
		return apperror.Internal(fmt.Errorf("job %s has unknown status %q", rawID, job.Status))
	}
	if !job.VerificationStatus.Valid() {
		return apperror.Internal(fmt.Errorf("job %s has unknown verification status %q", rawID, job.VerificationStatus))
	}
	if job.JobType != nil && !job.JobType.Valid() {
		return apperror.Internal(fmt.Errorf("job %s has unknown job type %q", rawID, *job.JobType))
	}
	if job.RemoteType != nil && !job.RemoteType.Valid() {
		return apperror.Internal(fmt.Errorf("job %s has unknown remote type %q", rawID, *job.RemoteType))
	}
	if job.ExperienceLevel != nil && !job.ExperienceLevel.Valid() {
		return apperror.Internal(fmt.Errorf("job %s has unknown experience level %q", rawID, *job.ExperienceLevel))
	}
	if job.SeniorityLevel != nil && !job.SeniorityLevel.Valid() {
		return apperror.Internal(fmt.Errorf("job %s has unknown seniority level %q", rawID, *job.SeniorityLevel))
	}
	if job.CompanySizeCategory != nil && !job.CompanySizeCategory.Valid() {
		return apperror.Internal(fmt.Errorf("job %s has unknown company size category %q", rawID, *job.CompanySizeCategory))
	}
	return nil
}
