package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.JobListing) (*domain.JobListing, error) {
	if job.ExperienceLevel != nil {
		canonical := domain.CanonicalExperienceLevel(string(*job.ExperienceLevel))
		job.ExperienceLevel = &canonical
	}

	if err := validateTitle(job.Title); err != nil {
		return nil, err
	}
	if err := validateSalary(job.SalaryMin, job.SalaryMax); err != nil {
		return nil, err
	}
	if err := validateQualityScore(job.DataQualityScore); err != nil {
		return nil, err
	}
	if err := validateJobEnums(job.JobType, job.RemoteType, job.ExperienceLevel, job.SeniorityLevel, job.CompanySizeCategory); err != nil {
		return nil, err
	}
	if job.Status != "" && !job.Status.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown status %q", job.Status))
	}
	if job.VerificationStatus != "" && !job.VerificationStatus.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown verification status %q", job.VerificationStatus))
	}

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJob(ctx context.Context, id uuid.UUID) (*domain.JobListing, error) {
	return u.jobRepo.GetByID(ctx, id)
}

func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, page domain.ListParams) ([]domain.JobListing, int64, error) {
	return u.jobRepo.List(ctx, filter, page)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id uuid.UUID, update *domain.JobListingUpdate) (*domain.JobListing, error) {
	if update.ExperienceLevel != nil {
		canonical := domain.CanonicalExperienceLevel(string(*update.ExperienceLevel))
		update.ExperienceLevel = &canonical
	}

	if update.Title != nil {
		if err := validateTitle(*update.Title); err != nil {
			return nil, err
		}
	}
	// Cross-bound salary consistency against an unchanged bound is
	// enforced by the DB check constraint; here we only reject what is
	// knowable from the update alone.
	if err := validateSalary(update.SalaryMin, update.SalaryMax); err != nil {
		return nil, err
	}
	if err := validateQualityScore(update.DataQualityScore); err != nil {
		return nil, err
	}
	if err := validateJobEnums(update.JobType, update.RemoteType, update.ExperienceLevel, update.SeniorityLevel, update.CompanySizeCategory); err != nil {
		return nil, err
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown status %q", *update.Status))
	}
	if update.VerificationStatus != nil && !update.VerificationStatus.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown verification status %q", *update.VerificationStatus))
	}

	return u.jobRepo.Update(ctx, id, update)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return u.jobRepo.Delete(ctx, id)
}

func validateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < 3 || n > 200 {
		return apperror.Unprocessable("Title: must be between 3 and 200 characters")
	}
	return nil
}

func validateSalary(min, max *float64) error {
	if min != nil && *min < 0 {
		return apperror.Unprocessable("Minimum salary: must be >= 0")
	}
	if min != nil && max != nil && *max < *min {
		return apperror.Unprocessable("Maximum salary: must be >= minimum salary")
	}
	return nil
}

func validateQualityScore(score *float64) error {
	if score != nil && (*score < 0.0 || *score > 1.0) {
		return apperror.Unprocessable("Data quality score: must be between 0.0 and 1.0")
	}
	return nil
}

func validateJobEnums(jobType *domain.JobType, remoteType *domain.RemoteType, level *domain.ExperienceLevel, seniority *domain.SeniorityLevel, sizeCategory *domain.CompanySizeCategory) error {
	if jobType != nil && !jobType.Valid() {
		return apperror.Unprocessable(fmt.Sprintf("unknown job type %q", *jobType))
	}
	if remoteType != nil && !remoteType.Valid() {
		return apperror.Unprocessable(fmt.Sprintf("unknown remote type %q", *remoteType))
	}
	if level != nil && !level.Valid() {
		return apperror.Unprocessable(fmt.Sprintf("unknown experience level %q", *level))
	}
	if seniority != nil && !seniority.Valid() {
		return apperror.Unprocessable(fmt.Sprintf("unknown seniority level %q", *seniority))
	}
	if sizeCategory != nil && !sizeCategory.Valid() {
		return apperror.Unprocessable(fmt.Sprintf("unknown company size category %q", *sizeCategory))
	}
	return nil
}
