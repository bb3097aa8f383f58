// Package validation holds the explicit coercion rules applied to text input
// before it reaches storage. Each rule fails with an apperrors validation error
// instead of guessing a value.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// DateLayouts are the accepted spellings of the expected date of defense, tried in order.
var DateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04",
}

// RequireText rejects empty or whitespace-only text.
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, field+" is required")
	}
	return nil
}

// ParseSalary converts salary text into a whole number.
func ParseSalary(field, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, apperrors.NewValidationError(field, field+" is required")
	}

	salary, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(field, fmt.Sprintf("%s must be a whole number, got %q", field, text))
	}
	return salary, nil
}

// ParseDate converts date text into a UTC timestamp.
func ParseDate(field, text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, apperrors.NewValidationError(field, field+" is required")
	}

	for _, layout := range DateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(field, fmt.Sprintf("%s must be a date (YYYY-MM-DD), got %q", field, text))
}

// ParseID converts a path identifier into a positive integer.
func ParseID(text string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidStudentID, text)
	}
	return id, nil
}
