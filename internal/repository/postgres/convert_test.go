package postgres

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpilot-backend/pkg/apperror"
)

func TestParseID(t *testing.T) {
	t.Run("Should round-trip a stored id", func(t *testing.T) {
		id := uuid.New()
		parsed, err := parseID(idString(id), "job")
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("Should report a corrupt id as an internal error", func(t *testing.T) {
		_, err := parseID("not-a-uuid", "job")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})

	t.Run("Should pass nil through for nullable foreign keys", func(t *testing.T) {
		parsed, err := parseOptionalID(nil, "timeline event")
		require.NoError(t, err)
		assert.Nil(t, parsed)

		id := uuid.New()
		raw := id.String()
		parsed, err = parseOptionalID(&raw, "timeline event")
		require.NoError(t, err)
		require.NotNil(t, parsed)
		assert.Equal(t, id, *parsed)
	})
}

func TestToStringList(t *testing.T) {
	assert.NotNil(t, toStringList(nil))
	assert.Empty(t, toStringList(nil))
	assert.Equal(t, []string{"Go", "SQL"}, []string(toStringList([]string{"Go", "SQL"})))
}

func TestToJSONMap(t *testing.T) {
	t.Run("Should read NULL as an empty document", func(t *testing.T) {
		m, err := toJSONMap(nil, "resume", "content")
		require.NoError(t, err)
		assert.NotNil(t, m)
		assert.Empty(t, m)
	})

	t.Run("Should read a json null literal as an empty document", func(t *testing.T) {
		m, err := toJSONMap([]byte("null"), "resume", "content")
		require.NoError(t, err)
		assert.NotNil(t, m)
	})

	t.Run("Should surface malformed stored json as internal", func(t *testing.T) {
		_, err := toJSONMap([]byte("{broken"), "resume", "content")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	})

	t.Run("Should write nil as an empty object", func(t *testing.T) {
		raw, err := jsonbValue(nil)
		require.NoError(t, err)
		assert.Equal(t, "{}", string(raw))
	})
}

func TestUpdateBuilder(t *testing.T) {
	t.Run("Should be empty until a field is set", func(t *testing.T) {
		assert.True(t, newUpdateBuilder().Empty())
	})

	t.Run("Should number placeholders in set order with the id last", func(t *testing.T) {
		b := newUpdateBuilder()
		b.Set("title", "Backend Engineer")
		b.Set("salary_min", 50000.0)

		query, args := b.Query("job_listings", "abc")

		assert.Equal(t, "UPDATE job_listings SET title = $1, salary_min = $2, updated_at = NOW() WHERE id = $3", query)
		assert.Equal(t, []interface{}{"Backend Engineer", 50000.0, "abc"}, args)
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "acme corp", normalizeName("  Acme   Corp "))
	assert.Equal(t, "acme corp", normalizeName("ACME CORP"))
	assert.Equal(t, "", normalizeName("   "))
}
