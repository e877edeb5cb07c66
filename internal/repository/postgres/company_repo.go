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

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

// The culture-values column is named company_values: bare "values" is a
// reserved word in Postgres and cannot appear unquoted in a column list.
const companyColumns = `id, name, normalized_name, domain, industry, size, size_category,
	location, founded_year, website, description, culture, company_values, benefits,
	created_at, updated_at`

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query := `INSERT INTO companies
		(name, normalized_name, domain, industry, size, size_category,
		 location, founded_year, website, description, culture, company_values, benefits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var rawID string
	err := r.db.QueryRow(ctx, query,
		company.Name, normalizeName(company.Name), company.Domain,
		company.Industry, company.Size, company.SizeCategory,
		company.Location, company.FoundedYear, company.Website,
		company.Description, company.Culture,
		pq.Array([]string(company.Values)), pq.Array([]string(company.Benefits)),
	).Scan(&rawID)
	if err != nil {
		return nil, translateError(err, "company")
	}

	id, err := parseID(rawID, "company")
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *companyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, idString(id))
	return scanCompany(row)
}

func (r *companyRepo) List(ctx context.Context, filter domain.CompanyFilter, page domain.ListParams) ([]domain.Company, int64, error) {
	page = page.Clamp()

	where, args := companyFilterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM companies %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		companyColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, 0, translateError(err, "company")
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "company")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM companies ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err, "company")
	}

	return companies, total, nil
}

func (r *companyRepo) Update(ctx context.Context, id uuid.UUID, update *domain.CompanyUpdate) (*domain.Company, error) {
	b := newUpdateBuilder()
	if update.Name != nil {
		b.Set("name", *update.Name)
		b.Set("normalized_name", normalizeName(*update.Name))
	}
	if update.Domain != nil {
		b.Set("domain", *update.Domain)
	}
	if update.Industry != nil {
		b.Set("industry", *update.Industry)
	}
	if update.Size != nil {
		b.Set("size", *update.Size)
	}
	if update.SizeCategory != nil {
		b.Set("size_category", *update.SizeCategory)
	}
	if update.Location != nil {
		b.Set("location", *update.Location)
	}
	if update.FoundedYear != nil {
		b.Set("founded_year", *update.FoundedYear)
	}
	if update.Website != nil {
		b.Set("website", *update.Website)
	}
	if update.Description != nil {
		b.Set("description", *update.Description)
	}
	if update.Culture != nil {
		b.Set("culture", *update.Culture)
	}
	if update.Values != nil {
		b.Set("company_values", pq.Array([]string(*update.Values)))
	}
	if update.Benefits != nil {
		b.Set("benefits", pq.Array([]string(*update.Benefits)))
	}

	if b.Empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.Query("companies", idString(id))
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "company")
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NotFound("company not found")
	}
	return r.GetByID(ctx, id)
}

func (r *companyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, idString(id))
	if err != nil {
		return translateError(err, "company")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("company not found")
	}
	return nil
}

func companyFilterClause(filter domain.CompanyFilter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	if filter.Industry != nil {
		args = append(args, *filter.Industry)
		clauses = append(clauses, fmt.Sprintf("industry = $%d", len(args)))
	}
	if filter.SizeCategory != nil {
		args = append(args, *filter.SizeCategory)
		clauses = append(clauses, fmt.Sprintf("size_category = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var (
		company  domain.Company
		rawID    string
		values   []string
		benefits []string
	)
	err := row.Scan(
		&rawID, &company.Name, &company.NormalizedName, &company.Domain,
		&company.Industry, &company.Size, &company.SizeCategory,
		&company.Location, &company.FoundedYear, &company.Website,
		&company.Description, &company.Culture,
		pq.Array(&values), pq.Array(&benefits),
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "company")
	}

	id, err := parseID(rawID, "company")
	if err != nil {
		return nil, err
	}
	company.ID = id
	company.Values = toStringList(values)
	company.Benefits = toStringList(benefits)

	if company.SizeCategory != nil && !company.SizeCategory.Valid() {
		return nil, translateError(fmt.Errorf("company %s has unknown size category %q", rawID, *company.SizeCategory), "company")
	}
	return &company, nil
}

// normalizeName lower-cases and collapses whitespace to give companies a
// canonical comparison key independent of display casing.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
