// Package validation holds the shared validator instance and the custom
// rules for task enumerations, calendar dates, and tag colors. The storage
// backend runs every caller-supplied value through this package before any
// write.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/dmaldon/taskdesk/pkg/types"
)

var (
	// Validate is the shared validator instance.
	Validate *validator.Validate
)

// tagColorPattern matches the stored 7-character #RRGGBB form.
var tagColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func init() {
	Validate = validator.New()

	// Registration only fails on programmer error (empty tag name).
	if err := Validate.RegisterValidation("task_status", validateTaskStatus); err != nil {
		panic(fmt.Sprintf("failed to register task_status validator: %v", err))
	}
	if err := Validate.RegisterValidation("task_priority", validateTaskPriority); err != nil {
		panic(fmt.Sprintf("failed to register task_priority validator: %v", err))
	}
	if err := Validate.RegisterValidation("iso_date", validateISODate); err != nil {
		panic(fmt.Sprintf("failed to register iso_date validator: %v", err))
	}
	if err := Validate.RegisterValidation("hex_color", validateHexColor); err != nil {
		panic(fmt.Sprintf("failed to register hex_color validator: %v", err))
	}
}

// validateTaskStatus validates that a string is a recognized task status.
func validateTaskStatus(fl validator.FieldLevel) bool {
	return types.ValidStatus(fl.Field().String())
}

// validateTaskPriority validates that a string is a recognized task priority.
func validateTaskPriority(fl validator.FieldLevel) bool {
	return types.ValidPriority(fl.Field().String())
}

// validateISODate validates that a string parses as a calendar date in the
// due date layout.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(types.DueDateLayout, fl.Field().String())
	return err == nil
}

// validateHexColor validates the stored 7-character #RRGGBB color form.
func validateHexColor(fl validator.FieldLevel) bool {
	return tagColorPattern.MatchString(fl.Field().String())
}

// SanitizeText trims whitespace and removes control characters except
// newline and tab. Titles and dictated text pass through here before
// validation.
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// TaskParams checks task creation input. Returns a *types.ValidationError
// naming the offending field, or nil.
func TaskParams(p types.TaskParams) error {
	return asValidationError(Validate.Struct(p))
}

// TaskPatch checks the supplied fields of a partial task update.
func TaskPatch(p types.TaskPatch) error {
	return asValidationError(Validate.Struct(p))
}

// ValidateStatus validates a task status value.
func ValidateStatus(value string) error {
	if !types.ValidStatus(value) {
		return types.NewValidationError("status", reasonFor("task_status"))
	}
	return nil
}

// ValidatePriority validates a task priority value.
func ValidatePriority(value string) error {
	if !types.ValidPriority(value) {
		return types.NewValidationError("priority", reasonFor("task_priority"))
	}
	return nil
}

// ValidateDueDate validates a non-empty due date value.
func ValidateDueDate(value string) error {
	if err := Validate.Var(value, "iso_date"); err != nil {
		return types.NewValidationError("due_date", reasonFor("iso_date"))
	}
	return nil
}

// ValidateTagColor validates the stored tag color form.
func ValidateTagColor(value string) error {
	if err := Validate.Var(value, "hex_color"); err != nil {
		return types.NewValidationError("color", reasonFor("hex_color"))
	}
	return nil
}

// fieldNames maps struct field names to their user-facing form.
var fieldNames = map[string]string{
	"Title":       "title",
	"Description": "description",
	"DueDate":     "due_date",
	"Status":      "status",
	"Priority":    "priority",
	"CategoryID":  "category_id",
	"Name":        "name",
	"Color":       "color",
}

// asValidationError converts a validator error into the typed
// *types.ValidationError for the first failing field. Non-validator
// errors pass through unchanged.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field, ok := fieldNames[fe.Field()]
	if !ok {
		field = strings.ToLower(fe.Field())
	}
	return types.NewValidationError(field, reasonFor(fe.Tag()))
}

// reasonFor renders the user-facing reason for a failed validation tag.
func reasonFor(tag string) string {
	switch tag {
	case "required":
		return "must not be empty"
	case "iso_date":
		return "must be a calendar date in YYYY-MM-DD form"
	case "task_status":
		return "must be one of pending, completed, overdue"
	case "task_priority":
		return "must be one of low, medium, high"
	case "hex_color":
		return "must be a 7-character hex color such as #88C0D0"
	default:
		return "failed " + tag + " check"
	}
}
