// Package id provides the identifier type shared by all entities.
// Identifiers are assigned by PostgreSQL BIGSERIAL columns.
package id

import (
	"fmt"
	"strconv"
)

// ID is the primary key type of every table.
type ID = int64

// Parse converts a path or query value to ID.
// Only positive integers are accepted.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", s)
	}
	return v, nil
}

// IsNil reports whether the id is unset.
func IsNil(v ID) bool {
	return v == 0
}
