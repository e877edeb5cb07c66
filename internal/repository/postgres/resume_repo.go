package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

const resumeColumns = `id, user_profile_id, title, content, created_at, updated_at`

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) (*domain.Resume, error) {
	content, err := jsonbValue(resume.Content)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var rawID string
	err = r.db.QueryRow(ctx,
		`INSERT INTO resumes (user_profile_id, title, content) VALUES ($1, $2, $3) RETURNING id`,
		idString(resume.UserProfileID), resume.Title, content,
	).Scan(&rawID)
	if err != nil {
		return nil, translateError(err, "resume")
	}

	id, err := parseID(rawID, "resume")
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *resumeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, idString(id))
	return scanResume(row)
}

func (r *resumeRepo) ListByUser(ctx context.Context, userID uuid.UUID, page domain.ListParams) ([]domain.Resume, int64, error) {
	page = page.Clamp()

	query := fmt.Sprintf(`SELECT %s FROM resumes WHERE user_profile_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`, resumeColumns)
	rows, err := r.db.Query(ctx, query, idString(userID), page.Limit, page.Offset)
	if err != nil {
		return nil, 0, translateError(err, "resume")
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, 0, err
		}
		resumes = append(resumes, *resume)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "resume")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes WHERE user_profile_id = $1`, idString(userID)).Scan(&total); err != nil {
		return nil, 0, translateError(err, "resume")
	}

	return resumes, total, nil
}

func (r *resumeRepo) Update(ctx context.Context, id uuid.UUID, update *domain.ResumeUpdate) (*domain.Resume, error) {
	b := newUpdateBuilder()
	if update.Title != nil {
		b.Set("title", *update.Title)
	}
	if update.Content != nil {
		content, err := jsonbValue(*update.Content)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		b.Set("content", content)
	}

	if b.Empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.Query("resumes", idString(id))
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "resume")
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NotFound("resume not found")
	}
	return r.GetByID(ctx, id)
}

func (r *resumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, idString(id))
	if err != nil {
		return translateError(err, "resume")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("resume not found")
	}
	return nil
}

func scanResume(row rowScanner) (*domain.Resume, error) {
	var (
		resume     domain.Resume
		rawID      string
		rawUserID  string
		rawContent []byte
	)
	err := row.Scan(&rawID, &rawUserID, &resume.Title, &rawContent, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "resume")
	}

	id, err := parseID(rawID, "resume")
	if err != nil {
		return nil, err
	}
	userID, err := parseID(rawUserID, "resume")
	if err != nil {
		return nil, err
	}
	content, err := toJSONMap(rawContent, "resume", "content")
	if err != nil {
		return nil, err
	}

	resume.ID = id
	resume.UserProfileID = userID
	resume.Content = content
	return &resume, nil
}
