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

type timelineRepo struct {
	db *pgxpool.Pool
}

func NewTimelineRepository(db *pgxpool.Pool) domain.TimelineRepository {
	return &timelineRepo{db: db}
}

const timelineColumns = `id, user_profile_id, event_type, title, description,
	job_id, application_id, event_data, event_date, is_milestone,
	created_at, updated_at`

func (r *timelineRepo) Create(ctx context.Context, event *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	eventData, err := jsonbValue(event.EventData)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// event_date falls back to the row's creation time via column default
	var eventDate interface{}
	if !event.EventDate.IsZero() {
		eventDate = event.EventDate
	}

	query := `INSERT INTO timeline_events
		(user_profile_id, event_type, title, description, job_id, application_id,
		 event_data, event_date, is_milestone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()), $9)
		RETURNING id`

	var rawID string
	err = r.db.QueryRow(ctx, query,
		idString(event.UserProfileID), event.EventType, event.Title, event.Description,
		optionalIDString(event.JobID), optionalIDString(event.ApplicationID),
		eventData, eventDate, event.IsMilestone,
	).Scan(&rawID)
	if err != nil {
		return nil, translateError(err, "timeline event")
	}

	id, err := parseID(rawID, "timeline event")
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *timelineRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimelineEvent, error) {
	row := r.db.QueryRow(ctx, `SELECT `+timelineColumns+` FROM timeline_events WHERE id = $1`, idString(id))
	return scanTimelineEvent(row)
}

func (r *timelineRepo) List(ctx context.Context, filter domain.TimelineFilter, page domain.ListParams) ([]domain.TimelineEvent, int64, error) {
	page = page.Clamp()

	where, args := timelineFilterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM timeline_events %s ORDER BY event_date DESC LIMIT $%d OFFSET $%d`,
		timelineColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, 0, translateError(err, "timeline event")
	}
	defer rows.Close()

	var events []domain.TimelineEvent
	for rows.Next() {
		event, err := scanTimelineEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, translateError(err, "timeline event")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM timeline_events `+where, args...).Scan(&total); err != nil {
		return nil, 0, translateError(err, "timeline event")
	}

	return events, total, nil
}

func (r *timelineRepo) Update(ctx context.Context, id uuid.UUID, update *domain.TimelineEventUpdate) (*domain.TimelineEvent, error) {
	b := newUpdateBuilder()
	if update.Title != nil {
		b.Set("title", *update.Title)
	}
	if update.Description != nil {
		b.Set("description", *update.Description)
	}
	if update.EventData != nil {
		eventData, err := jsonbValue(*update.EventData)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		b.Set("event_data", eventData)
	}
	if update.EventDate != nil {
		b.Set("event_date", *update.EventDate)
	}
	if update.IsMilestone != nil {
		b.Set("is_milestone", *update.IsMilestone)
	}

	if b.Empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.Query("timeline_events", idString(id))
	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "timeline event")
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NotFound("timeline event not found")
	}
	return r.GetByID(ctx, id)
}

func (r *timelineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM timeline_events WHERE id = $1`, idString(id))
	if err != nil {
		return translateError(err, "timeline event")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("timeline event not found")
	}
	return nil
}

func timelineFilterClause(filter domain.TimelineFilter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	if filter.UserProfileID != nil {
		args = append(args, idString(*filter.UserProfileID))
		clauses = append(clauses, fmt.Sprintf("user_profile_id = $%d", len(args)))
	}
	if filter.EventType != nil {
		args = append(args, *filter.EventType)
		clauses = append(clauses, fmt.Sprintf("event_type = $%d", len(args)))
	}
	if filter.IsMilestone != nil {
		args = append(args, *filter.IsMilestone)
		clauses = append(clauses, fmt.Sprintf("is_milestone = $%d", len(args)))
	}
	if filter.JobID != nil {
		args = append(args, idString(*filter.JobID))
		clauses = append(clauses, fmt.Sprintf("job_id = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func scanTimelineEvent(row rowScanner) (*domain.TimelineEvent, error) {
	var (
		event       domain.TimelineEvent
		rawID       string
		rawUserID   string
		rawJobID    *string
		rawAppID    *string
		rawData     []byte
	)
	err := row.Scan(
		&rawID, &rawUserID, &event.EventType, &event.Title, &event.Description,
		&rawJobID, &rawAppID, &rawData, &event.EventDate, &event.IsMilestone,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err, "timeline event")
	}

	id, err := parseID(rawID, "timeline event")
	if err != nil {
		return nil, err
	}
	userID, err := parseID(rawUserID, "timeline event")
	if err != nil {
		return nil, err
	}
	jobID, err := parseOptionalID(rawJobID, "timeline event")
	if err != nil {
		return nil, err
	}
	appID, err := parseOptionalID(rawAppID, "timeline event")
	if err != nil {
		return nil, err
	}
	eventData, err := toJSONMap(rawData, "timeline event", "event_data")
	if err != nil {
		return nil, err
	}

	event.ID = id
	event.UserProfileID = userID
	event.JobID = jobID
	event.ApplicationID = appID
	event.EventData = eventData

	if !event.EventType.Valid() {
		return nil, apperror.Internal(fmt.Errorf("timeline event %s has unknown type %q", rawID, event.EventType))
	}
	return &event, nil
}
