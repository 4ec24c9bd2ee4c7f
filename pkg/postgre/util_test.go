package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInClause(t *testing.T) {
	clause, args := InClause("id", []string{"a", "b", "c"}, 2)
	assert.Equal(t, "id IN ($2,$3,$4)", clause)
	assert.Equal(t, []interface{}{"a", "b", "c"}, args)
}

func TestValidateIDs(t *testing.T) {
	assert.NoError(t, ValidateIDs([]string{"x", "y"}))
	assert.ErrorIs(t, ValidateIDs([]string{"x", ""}), ErrEmptyID)
}
