package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Profile fields
	"Name":               "Name",
	"Email":              "Email",
	"Title":              "Title",
	"ElevatorPitch":      "Elevator Pitch",
	"CareerNarrative":    "Career Narrative",
	"AvailabilityStatus": "Availability Status",
	"AvailabilityDate":   "Availability Date",
	"RemotePreference":   "Remote Preference",
	"SalaryMin":          "Minimum Salary",
	"SalaryMax":          "Maximum Salary",

	// Experience fields
	"CompanyName":  "Company Name",
	"StartDate":    "Start Date",
	"EndDate":      "End Date",
	"BulletPoints": "Bullet Points",
	"DisplayOrder": "Display Order",

	// Skill fields
	"SkillName":       "Skill Name",
	"Category":        "Category",
	"SelfRating":      "Self Rating",
	"YearsExperience": "Years of Experience",
	"LastUsed":        "Last Used",

	// Honesty content fields
	"GapType":         "Gap Type",
	"Description":     "Description",
	"Question":        "Question",
	"Answer":          "Answer",
	"InstructionType": "Instruction Type",
	"Instruction":     "Instruction",
	"Priority":        "Priority",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.Join(strings.Fields(param), ", "))

	case "email":
		return fmt.Sprintf("%s: Invalid email format", label)

	case "valid_name":
		return fmt.Sprintf("%s: Only letters, spaces, and common punctuation (. ' - /) are allowed", label)

	case "no_emoji":
		return fmt.Sprintf("%s: Must not contain emoji or special symbols", label)

	case "iso_date":
		return fmt.Sprintf("%s: Must be a valid date in YYYY-MM-DD format", label)

	default:
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
