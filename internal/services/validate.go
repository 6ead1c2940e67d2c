package services

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"eventcollection/internal/domain"
)

// maxEventNameLen is the application-level limit for event names.
const maxEventNameLen = 50

var (
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// validDate reports whether s is a real calendar date in YYYY-MM-DD form.
func validDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// validTime reports whether s is a 24-hour HH:MM time.
func validTime(s string) bool {
	return timeRegex.MatchString(s)
}

// validPhone reports whether s is a ten-digit phone number.
func validPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// validRating reports whether r is within the stored rating bounds.
func validRating(r int) bool {
	return r >= domain.MinRating && r <= domain.MaxRating
}

// intValue converts a decoded JSON value to an int. JSON numbers arrive as
// float64, so fractional values are rejected.
func intValue(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("not an integer")
		}
		return int(n), nil
	case int:
		return n, nil
	}
	return 0, fmt.Errorf("not a number")
}

// floatValue converts a decoded JSON value to a float64.
func floatValue(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0, fmt.Errorf("not a number")
}

// stringValue converts a decoded JSON value to a string.
func stringValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("not a string")
	}
	return s, nil
}

// invalidf wraps domain.ErrInvalidInput with a formatted message.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// checkKnownFields rejects any field name not in the allowed list.
func checkKnownFields(fields map[string]any, allowed []string) error {
	for name := range fields {
		known := false
		for _, a := range allowed {
			if name == a {
				known = true
				break
			}
		}
		if !known {
			return invalidf("unknown field %q", name)
		}
	}
	return nil
}
