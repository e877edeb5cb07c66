package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

type skillBankRepo struct {
	db *pgxpool.Pool
}

func NewSkillBankRepository(db *pgxpool.Pool) domain.SkillBankRepository {
	return &skillBankRepo{db: db}
}

const skillBankColumns = `id, user_profile_id, content, created_at, updated_at`

func (r *skillBankRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.SkillBank, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+skillBankColumns+` FROM skill_banks WHERE user_profile_id = $1`,
		idString(userID),
	)
	return scanSkillBank(row)
}

// Upsert creates the user's skill bank on first write and replaces its
// content after that. One bank per user, enforced by the unique key.
func (r *skillBankRepo) Upsert(ctx context.Context, bank *domain.SkillBank) (*domain.SkillBank, error) {
	content, err := jsonbValue(bank.Content)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	query := `INSERT INTO skill_banks (user_profile_id, content)
		VALUES ($1, $2)
		ON CONFLICT (user_profile_id)
		DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, idString(bank.UserProfileID), content); err != nil {
		return nil, translateError(err, "skill bank")
	}
	return r.GetByUserID(ctx, bank.UserProfileID)
}

func scanSkillBank(row rowScanner) (*domain.SkillBank, error) {
	var (
		bank       domain.SkillBank
		rawID      string
		rawUserID  string
		rawContent []byte
	)
	err := row.Scan(&rawID, &rawUserID, &rawContent, &bank.CreatedAt, &bank.UpdatedAt)
	if err != nil {
		return nil, translateError(err, "skill bank")
	}

	id, err := parseID(rawID, "skill bank")
	if err != nil {
		return nil, err
	}
	userID, err := parseID(rawUserID, "skill bank")
	if err != nil {
		return nil, err
	}
	content, err := toJSONMap(rawContent, "skill bank", "content")
	if err != nil {
		return nil, err
	}

	bank.ID = id
	bank.UserProfileID = userID
	bank.Content = content
	return &bank, nil
}
