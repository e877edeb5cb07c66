package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":     "Email",
	"Password":  "Password",
	"FirstName": "First name",
	"LastName":  "Last name",

	// Job fields
	"Title":            "Title",
	"CompanyID":        "Company",
	"SalaryMin":        "Minimum salary",
	"SalaryMax":        "Maximum salary",
	"SalaryCurrency":   "Salary currency",
	"DataQualityScore": "Data quality score",
	"JobType":          "Job type",
	"RemoteType":       "Remote type",
	"ExperienceLevel":  "Experience level",
	"Status":           "Status",

	// Company fields
	"Name":         "Name",
	"Domain":       "Domain",
	"FoundedYear":  "Founded year",
	"SizeCategory": "Size category",

	// Interaction / timeline fields
	"UserProfileID":   "User",
	"JobID":           "Job",
	"InteractionType": "Interaction type",
	"EventType":       "Event type",

	// Job source fields
	"DisplayName": "Display name",
	"BaseURL":     "Base URL",
}

// FormatValidationErrors converts validator.ValidationErrors to a list of
// field-level messages safe to return in a 422 body.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", label)
	case "min":
		return fmt.Sprintf("%s: must be at least %s", label, e.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s: must be >= %s", label, e.Param())
	case "lte":
		return fmt.Sprintf("%s: must be <= %s", label, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s: must be >= %s", label, getFieldLabel(e.Param()))
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", label, e.Param())
	case "url":
		return fmt.Sprintf("%s: must be a valid URL", label)
	case "valid_phone":
		return fmt.Sprintf("%s: must be a valid phone number", label)
	case "max_current_year":
		return fmt.Sprintf("%s: cannot be in the future", label)
	default:
		return fmt.Sprintf("%s: failed %s validation", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
