package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fully reserved Postgres keywords are never valid as unquoted column
// identifiers; queries build column lists unquoted, so none may appear.
var reservedIdentifiers = map[string]bool{
	"all": true, "and": true, "any": true, "array": true, "case": true,
	"check": true, "column": true, "constraint": true, "default": true,
	"distinct": true, "do": true, "else": true, "end": true, "for": true,
	"foreign": true, "from": true, "group": true, "having": true, "in": true,
	"limit": true, "not": true, "null": true, "offset": true, "on": true,
	"or": true, "order": true, "primary": true, "references": true,
	"select": true, "table": true, "then": true, "to": true, "union": true,
	"unique": true, "user": true, "using": true, "values": true,
	"when": true, "where": true, "with": true,
}

func TestCompanyColumnsAvoidReservedWords(t *testing.T) {
	for _, column := range strings.Split(companyColumns, ",") {
		column = strings.TrimSpace(column)
		assert.False(t, reservedIdentifiers[column], "column %q needs quoting or renaming", column)
	}
	assert.Contains(t, companyColumns, "company_values")
}
