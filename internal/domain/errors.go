package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrDataQuality indicates that input records violate their invariants.
	ErrDataQuality = errors.New("data quality")
	// ErrInvalidAmount indicates an amount that cannot be parsed as a decimal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate indicates a date that cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// DataQualityIssue describes a single malformed record.
type DataQualityIssue struct {
	RecordID string `json:"record_id"`
	Field    string `json:"field"`
	Reason   string `json:"reason"`
}

// DataQualityError lists every malformed record found while validating input.
type DataQualityError struct {
	Issues []DataQualityIssue
}

func (e *DataQualityError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s.%s: %s", i.RecordID, i.Field, i.Reason))
	}

	return ErrDataQuality.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrDataQuality) hold.
func (e *DataQualityError) Unwrap() error {
	return ErrDataQuality
}

// DateLayout is the calendar date layout accepted by params types.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date or an RFC 3339 timestamp.
// An empty string yields the zero time, which callers treat as missing.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

// ParseAsOf parses a reference date, defaulting to now when s is empty.
func ParseAsOf(s string, now time.Time) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}

	if t.IsZero() {
		return now, nil
	}

	return t, nil
}
