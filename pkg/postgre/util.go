package postgres

import (
	"fmt"

	"github.com/aarondl/strmangle"
)

// ValidateIDs rejects empty ids.
func ValidateIDs(ids []string) error {
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyID, i)
		}
	}
	return nil
}

// InClause builds "<column> IN ($start, ...)" for ids together with its arguments.
func InClause(column string, ids []string, start int) (string, []interface{}) {
	return fmt.Sprintf("%s IN (%s)", column, strmangle.Placeholders(true, len(ids), start, 1)), ConvertToInterface(ids)
}

// ConvertToInterface converts a slice of strings to a slice of interfaces.
func ConvertToInterface(slice []string) []interface{} {
	interfaces := make([]interface{}, len(slice))
	for i, v := range slice {
		interfaces[i] = v
	}
	return interfaces
}
