package repository

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is wrapped by repository reads when no row matches.
var ErrNotFound = errors.New("not found")

const timeLayout = time.RFC3339

// parseNullableTime parses a sql.NullString into a *time.Time.
// NULL, empty, or unparseable values yield nil.
func parseNullableTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeValue converts a *time.Time into a driver value (NULL when nil).
func nullableTimeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeLayout)
}

// nullableStringValue converts a *string into a driver value (NULL when nil).
func nullableStringValue(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// nullableIntValue converts a *int into a driver value (NULL when nil).
func nullableIntValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func stringPtrFromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

func intPtrFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
