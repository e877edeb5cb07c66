package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"go-jobpilot-backend/pkg/apperror"
)

// Postgres error codes the repositories care about
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// conflictMessages maps unique constraint names to client-safe details.
var conflictMessages = map[string]string{
	"user_profiles_email_key":         "email already registered",
	"companies_domain_key":            "company domain already registered",
	"job_sources_name_key":            "job source name already exists",
	"uq_user_job_interaction":         "interaction of this type already exists for this job",
	"skill_banks_user_profile_id_key": "skill bank already exists for this user",
}

// fkMessages maps foreign key constraint names to the missing parent.
var fkMessages = map[string]string{
	"jobs_company_id_fkey":                       "company not found",
	"jobs_canonical_id_fkey":                     "canonical job not found",
	"job_user_interactions_user_profile_id_fkey": "user not found",
	"job_user_interactions_job_id_fkey":          "job not found",
	"timeline_events_user_profile_id_fkey":       "user not found",
	"timeline_events_job_id_fkey":                "job not found",
	"timeline_events_application_id_fkey":        "application not found",
	"resumes_user_profile_id_fkey":               "user not found",
	"skill_banks_user_profile_id_fkey":           "user not found",
}

// translateError maps storage failures to the categorical error taxonomy:
// unique violations become 409, missing FK parents 404, check violations
// 422, missing rows 404, anything else an opaque 500.
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(entity + " not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if msg, ok := conflictMessages[pgErr.ConstraintName]; ok {
				return apperror.Conflict(msg)
			}
			return apperror.Conflict(entity + " already exists")
		case codeForeignKeyViolation:
			if msg, ok := fkMessages[pgErr.ConstraintName]; ok {
				return apperror.NotFound(msg)
			}
			return apperror.NotFound("referenced resource not found")
		case codeCheckViolation:
			return apperror.Unprocessable(entity + " violates constraint " + checkName(pgErr.ConstraintName))
		}
	}

	return apperror.Internal(err)
}

func checkName(constraint string) string {
	return strings.TrimPrefix(constraint, "ck_")
}
