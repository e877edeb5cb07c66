package validation_test

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobpilot-backend/pkg/validation"
)

type phoneFixture struct {
	Phone string `validate:"valid_phone"`
}

type yearFixture struct {
	FoundedYear int `validate:"max_current_year"`
}

type profileFixture struct {
	Email     string  `validate:"required,email"`
	Password  string  `validate:"required,min=8"`
	SalaryMin float64 `validate:"gte=0"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidPhone(t *testing.T) {
	v := newValidator(t)

	valid := []string{"", "+1234567890", "08123456789", "021-555-0199"}
	for _, phone := range valid {
		assert.NoError(t, v.Struct(phoneFixture{Phone: phone}), "phone %q", phone)
	}

	invalid := []string{"12345", "phone number", "+62 812 3456", "123456789012345678901"}
	for _, phone := range invalid {
		assert.Error(t, v.Struct(phoneFixture{Phone: phone}), "phone %q", phone)
	}
}

func TestMaxCurrentYear(t *testing.T) {
	v := newValidator(t)

	assert.NoError(t, v.Struct(yearFixture{FoundedYear: 0}))
	assert.NoError(t, v.Struct(yearFixture{FoundedYear: 1984}))
	assert.NoError(t, v.Struct(yearFixture{FoundedYear: time.Now().Year()}))
	assert.Error(t, v.Struct(yearFixture{FoundedYear: time.Now().Year() + 1}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(profileFixture{Email: "not-an-email", Password: "short", SalaryMin: -1})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	require.Len(t, messages, 3)
	assert.Contains(t, messages, "Email: must be a valid email address")
	assert.Contains(t, messages, "Password: must be at least 8")
	assert.Contains(t, messages, "Minimum salary: must be >= 0")
}

func TestFormatValidationErrorsNonValidator(t *testing.T) {
	messages := validation.FormatValidationErrors(assert.AnError)
	require.Len(t, messages, 1)
	assert.Equal(t, assert.AnError.Error(), messages[0])
}
