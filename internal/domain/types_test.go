package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpilot-backend/internal/domain"
)

func TestStringListUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  domain.StringList
	}{
		{"json array", `["Python","Go"]`, domain.StringList{"Python", "Go"}},
		{"array with padding", `[" Python ", "", "Go"]`, domain.StringList{"Python", "Go"}},
		{"csv string", `"Python, Java , ,Go"`, domain.StringList{"Python", "Java", "Go"}},
		{"csv of blanks", `"  ,  ,  "`, domain.StringList{}},
		{"single value", `"Python"`, domain.StringList{"Python"}},
		{"empty string", `""`, domain.StringList{}},
		{"empty array", `[]`, domain.StringList{}},
		{"null", `null`, domain.StringList{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var list domain.StringList
			require.NoError(t, json.Unmarshal([]byte(tc.input), &list))
			assert.Equal(t, tc.want, list)
			assert.NotNil(t, list)
		})
	}

	t.Run("rejects non-string non-array input", func(t *testing.T) {
		var list domain.StringList
		assert.Error(t, json.Unmarshal([]byte(`42`), &list))
	})
}

func TestStringListMarshal(t *testing.T) {
	t.Run("nil serializes as empty array", func(t *testing.T) {
		var list domain.StringList
		data, err := json.Marshal(list)
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, string(data))
	})

	t.Run("round-trips through JSON", func(t *testing.T) {
		list := domain.StringList{"Go", "Postgres"}
		data, err := json.Marshal(list)
		require.NoError(t, err)

		var back domain.StringList
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, list, back)
	})
}

func TestJSONMap(t *testing.T) {
	t.Run("null decodes to empty map", func(t *testing.T) {
		var m domain.JSONMap
		require.NoError(t, json.Unmarshal([]byte(`null`), &m))
		assert.NotNil(t, m)
		assert.Empty(t, m)
	})

	t.Run("nil serializes as empty object", func(t *testing.T) {
		var m domain.JSONMap
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})

	t.Run("documents round-trip losslessly", func(t *testing.T) {
		input := `{"sections":[{"title":"Experience","entries":2}],"meta":{"version":1.5}}`
		var m domain.JSONMap
		require.NoError(t, json.Unmarshal([]byte(input), &m))

		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, input, string(data))
	})
}

func TestListParamsClamp(t *testing.T) {
	cases := []struct {
		name       string
		in         domain.ListParams
		wantOffset int
		wantLimit  int
	}{
		{"defaults", domain.ListParams{}, 0, domain.DefaultPageSize},
		{"negative offset", domain.ListParams{Offset: -5, Limit: 10}, 0, 10},
		{"zero limit", domain.ListParams{Offset: 40, Limit: 0}, 40, domain.DefaultPageSize},
		{"negative limit", domain.ListParams{Limit: -1}, 0, domain.DefaultPageSize},
		{"limit over cap", domain.ListParams{Limit: 500}, 0, domain.MaxPageSize},
		{"limit at cap", domain.ListParams{Limit: 100}, 0, 100},
		{"in range untouched", domain.ListParams{Offset: 20, Limit: 50}, 20, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Clamp()
			assert.Equal(t, tc.wantOffset, got.Offset)
			assert.Equal(t, tc.wantLimit, got.Limit)
		})
	}
}

func TestCanonicalExperienceLevel(t *testing.T) {
	cases := []struct {
		raw  string
		want domain.ExperienceLevel
	}{
		{"Senior Level", domain.ExperienceSeniorLevel},
		{"entry-level", domain.ExperienceEntryLevel},
		{"  MID_LEVEL  ", domain.ExperienceMidLevel},
		{"lead", domain.ExperienceLead},
		{"principal", domain.ExperienceLevel("principal")},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, domain.CanonicalExperienceLevel(tc.raw), "input %q", tc.raw)
	}

	assert.False(t, domain.CanonicalExperienceLevel("principal").Valid())
	assert.True(t, domain.CanonicalExperienceLevel("Entry Level").Valid())
}
