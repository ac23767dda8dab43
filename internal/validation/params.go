package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/hyperengineering/fitlog/internal/types"
)

// ParseDate parses a date parameter in any of types.DateLayouts and returns
// it in UTC.
func ParseDate(field, value string) (time.Time, *ValidationError) {
	t, err := types.ParseTimestamp(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   field,
			Message: "must be a date (YYYY-MM-DD) or RFC 3339 datetime",
		}
	}
	return t, nil
}

// ParseUserID parses the required caller-supplied user identifier.
func ParseUserID(field, value string) (int64, *ValidationError) {
	if err := ValidateRequired(field, value); err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &ValidationError{
			Field:   field,
			Message: "must be an integer",
		}
	}
	return id, nil
}

// ParseNonNegativeInt parses an optional paging parameter, returning def
// when value is empty.
func ParseNonNegativeInt(field, value string, def int) (int, *ValidationError) {
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{
			Field:   field,
			Message: "must be an integer",
		}
	}
	if verr := ValidateNonNegative(field, &n); verr != nil {
		return 0, verr
	}
	return n, nil
}

// ParseFloat parses a required numeric parameter.
func ParseFloat(field, value string) (float64, *ValidationError) {
	if err := ValidateRequired(field, value); err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &ValidationError{
			Field:   field,
			Message: "must be a number",
		}
	}
	if verr := ValidateFinite(field, f); verr != nil {
		return 0, verr
	}
	return f, nil
}

// ValidateDateRange returns an error if end falls before start.
func ValidateDateRange(field string, start, end time.Time) *ValidationError {
	if end.Before(start) {
		return &ValidationError{
			Field:   field,
			Message: "must not be before start_date",
		}
	}
	return nil
}
