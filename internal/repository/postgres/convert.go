package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"go-jobpilot-backend/internal/domain"
	"go-jobpilot-backend/pkg/apperror"
)

// Conversion helpers between stored and domain forms. Identifiers live as
// TEXT columns; lists as text[]; documents as jsonb. The read path is
// total: stored nulls become empty collections, never nil.

func parseID(raw string, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Internal(fmt.Errorf("%s has malformed id %q: %w", entity, raw, err))
	}
	return id, nil
}

// parseOptionalID handles nullable FK columns scanned as *string.
func parseOptionalID(raw *string, entity string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := parseID(*raw, entity)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func idString(id uuid.UUID) string {
	return id.String()
}

func optionalIDString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// toStringList normalizes a scanned text[] to a non-nil ordered list.
func toStringList(items []string) domain.StringList {
	if items == nil {
		return domain.StringList{}
	}
	return domain.StringList(items)
}

// toJSONMap decodes a jsonb column scanned as raw bytes; NULL becomes {}.
func toJSONMap(raw []byte, entity, column string) (domain.JSONMap, error) {
	if len(raw) == 0 {
		return domain.JSONMap{}, nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, apperror.Internal(fmt.Errorf("%s.%s holds malformed json: %w", entity, column, err))
	}
	if m == nil {
		return domain.JSONMap{}, nil
	}
	return domain.JSONMap(m), nil
}

func jsonbValue(m domain.JSONMap) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// updateBuilder accumulates SET clauses for partial updates. Only fields
// the caller explicitly set are written; updated_at always refreshes.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{}
}

func (b *updateBuilder) Set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) Empty() bool {
	return len(b.sets) == 0
}

// Query renders "UPDATE table SET ..., updated_at = NOW() WHERE id = $n"
// and returns the argument list with the id appended.
func (b *updateBuilder) Query(table string, id string) (string, []interface{}) {
	args := append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d",
		table, strings.Join(b.sets, ", "), len(args),
	)
	return query, args
}
