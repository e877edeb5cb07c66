package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

// Common domain errors. Repositories translate storage failures into these
// (or into apperror categories) so handlers never see driver errors.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("duplicate resource")
)

// StringList is an ordered list of strings that also accepts a single
// comma-separated string on JSON input: "Python, Java , ,Go" decodes to
// ["Python","Java","Go"]. JSON null decodes to an empty list, so callers
// never observe a nil collection.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = normalizeItems(items)
		return nil
	}

	var csv string
	if err := json.Unmarshal(data, &csv); err != nil {
		return err
	}
	*l = SplitCSV(csv)
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// SplitCSV splits a comma-separated string, trimming whitespace and
// dropping empty items. "  ,  ,  " yields an empty list.
func SplitCSV(csv string) StringList {
	return normalizeItems(strings.Split(csv, ","))
}

func normalizeItems(items []string) StringList {
	out := StringList{}
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JSONMap is an arbitrary key-value document (event data, scraping rules,
// job snapshots). JSON null decodes to an empty map.
type JSONMap map[string]interface{}

func (m *JSONMap) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = JSONMap{}
		return nil
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = JSONMap(raw)
	return nil
}

func (m JSONMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

// ListParams carries pagination for repository list operations.
type ListParams struct {
	Offset int
	Limit  int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Clamp enforces offset >= 0 and limit in [1, MaxPageSize], defaulting an
// unset limit to DefaultPageSize.
func (p ListParams) Clamp() ListParams {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}
