package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if strings.TrimSpace(company.Name) == "" {
		return nil, apperror.Unprocessable("Company name: this field is required")
	}
	if company.SizeCategory != nil && !company.SizeCategory.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown size category %q", *company.SizeCategory))
	}
	return u.companyRepo.Create(ctx, company)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return u.companyRepo.GetByID(ctx, id)
}

func (u *companyUsecase) ListCompanies(ctx context.Context, filter domain.CompanyFilter, page domain.ListParams) ([]domain.Company, int64, error) {
	return u.companyRepo.List(ctx, filter, page)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, id uuid.UUID, update *domain.CompanyUpdate) (*domain.Company, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, apperror.Unprocessable("Company name: this field is required")
	}
	if update.SizeCategory != nil && !update.SizeCategory.Valid() {
		return nil, apperror.Unprocessable(fmt.Sprintf("unknown size category %q", *update.SizeCategory))
	}
	return u.companyRepo.Update(ctx, id, update)
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return u.companyRepo.Delete(ctx, id)
}
