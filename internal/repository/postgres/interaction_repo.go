package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type interactionRepo struct {
	db *pgxpool.Pool
}

func NewInteractionRepository(db *pgxpool.Pool) domain.InteractionRepository {
	return &interactionRepo{db: db}
}

const interactionColumns = `id, user_profile_id, job_id, interaction_type, application_status,
	applied_date, response_date, follow_up_date, interview_scheduled, saved_date,
	resume_version, cover_letter, notes,
	interaction_count, first_interaction, last_interaction, job_snapshot,
	created_at, updated_at`

func (r *interactionRepo) Create(ctx context.Context, interaction *domain.JobUserInteraction) (*domain.JobUserInteraction, error) {
	status := interaction.ApplicationStatus
	if status == "" {
		status = domain.ApplicationNotApplied
	}
	count := interaction.InteractionCount
	if count < 1 {
		count = 1
	}
	snapshot, err := jsonbValue(interaction.JobSnapshot)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	query := `INSERT INTO job_user_interactions
		(user_profile_id, job_id, interaction_type, application_status,
		 applied_date, response_date, follow_up_date, interview_scheduled, saved_date,
		 resume_version, cover_letter, notes,
		 interaction_count, first_interaction, last_interaction, job_snapshot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	var rawID string
	err = r.db.QueryRow(ctx, query,
		idString(interaction.UserProfileID), idString(interaction.JobID),
		interaction.InteractionType, status,
		interaction.AppliedDate, interaction.ResponseDate, interaction.FollowUpDate,
		interaction.InterviewScheduled, interaction.SavedDate,
		interaction.ResumeVersion, interaction.CoverLetter, interaction.Notes,
		count, interaction.FirstInteraction, interaction.LastInteraction, snapshot,
	).Scan(&rawID)
	if err != nil {
		return nil, translateError(err, "interaction")
	}

	id, err := parseID(rawID, "interaction")
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *interactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.JobUserInteraction, error) {
	row := r.db.QueryRow(ctx, `SELECT `+interactionColumns+` FROM job_user_interactions WHERE id = $1`, idString(id))
	return scanInteraction(row)
}

func (r *interactionRepo) List(ctx context.Context, filter domain.InteractionFilter, page domain.ListParams) ([]domain.JobUserInteraction, int64, error) {
	page = page.Clamp()

	where, args := interactionFilterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM job_user_interactions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		interactionColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, 0, translateError(err, "interaction")
	}
	defer rows.Close()

	var interactions []domain.JobUserInteraction
	for rows.Next() {
		interaction, err := scanInteraction(rows)
		if err != nil {
			return nil, 0, err
		}
		interactions = append(interactions, *interaction)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "interaction")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_user_interactions `+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err, "interaction")
	}

	return interactions, total, nil
}

func (r *interactionRepo) Update(ctx context.Context, id uuid.UUID, update *domain.InteractionUpdate) (*domain.JobUserInteraction, error) {
	b := newUpdateBuilder()
	if update.ApplicationStatus != nil {
		b.Set("application_status", *update.ApplicationStatus)
	}
	if update.AppliedDate != nil {
		b.Set("applied_date", *update.AppliedDate)
	}
	if update.ResponseDate != nil {
		b.Set("response_date", *update.ResponseDate)
	}
	if update.FollowUpDate != nil {
		b.Set("follow_up_date", *update.FollowUpDate)
	}
	if update.InterviewScheduled != nil {
		b.Set("interview_scheduled", *update.InterviewScheduled)
	}
	if update.ResumeVersion != nil {
		b.Set("resume_version", *update.ResumeVersion)
	}
	if update.CoverLetter != nil {
		b.Set("cover_letter", *update.CoverLetter)
	}
	if update.Notes != nil {
		b.Set("notes", *update.Notes)
	}

	if b.Empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.Query("job_user_interactions", idString(id))
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "interaction")
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NotFound("application not found")
	}
	return r.GetByID(ctx, id)
}

func (r *interactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_user_interactions WHERE id = $1`, idString(id))
	if err != nil {
		return translateError(err, "interaction")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("application not found")
	}
	return nil
}

func interactionFilterClause(filter domain.InteractionFilter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	if filter.UserProfileID != nil {
		args = append(args, idString(*filter.UserProfileID))
		clauses = append(clauses, fmt.Sprintf("user_profile_id = $%d", len(args)))
	}
	if filter.JobID != nil {
		args = append(args, idString(*filter.JobID))
		clauses = append(clauses, fmt.Sprintf("job_id = $%d", len(args)))
	}
	if filter.InteractionType != nil {
		args = append(args, *filter.InteractionType)
		clauses = append(clauses, fmt.Sprintf("interaction_type = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("application_status = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func scanInteraction(row rowScanner) (*domain.JobUserInteraction, error) {
	var (
		interaction domain.JobUserInteraction
		rawID       string
		rawUserID   string
		rawJobID    string
		rawSnapshot []byte
	)
	err := row.Scan(
		&rawID, &rawUserID, &rawJobID,
		&interaction.InteractionType, &interaction.ApplicationStatus,
		&interaction.AppliedDate, &interaction.ResponseDate, &interaction.FollowUpDate,
		&interaction.InterviewScheduled, &interaction.SavedDate,
		&interaction.ResumeVersion, &interaction.CoverLetter, &interaction.Notes,
		&interaction.InteractionCount, &interaction.FirstInteraction, &interaction.LastInteraction,
		&rawSnapshot,
		&interaction.CreatedAt, &interaction.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "application")
	}

	id, err := parseID(rawID, "interaction")
	if err != nil {
		return nil, err
	}
	userID, err := parseID(rawUserID, "interaction")
	if err != nil {
		return nil, err
	}
	jobID, err := parseID(rawJobID, "interaction")
	if err != nil {
		return nil, err
	}
	snapshot, err := toJSONMap(rawSnapshot, "interaction", "job_snapshot")
	if err != nil {
		return nil, err
	}

	interaction.ID = id
	interaction.UserProfileID = userID
	interaction.JobID = jobID
	interaction.JobSnapshot = snapshot

	if !interaction.InteractionType.Valid() {
		return nil, apperror.Internal(fmt.Errorf("interaction %s has unknown type %q", rawID, interaction.InteractionType))
	}
	if !interaction.ApplicationStatus.Valid() {
		return nil, apperror.Internal(fmt.Errorf("interaction %s has unknown application status %q", rawID, interaction.ApplicationStatus))
	}
	return &interaction, nil
}
