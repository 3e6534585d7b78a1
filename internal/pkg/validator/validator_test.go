package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.True(t, IsValidUUID("9f2c4e1a-3b5d-4c7e-8f1a-2b3c4d5e6f70"))
	assert.True(t, IsValidUUID("9F2C4E1A-3B5D-4C7E-8F1A-2B3C4D5E6F70"))

	assert.False(t, IsValidUUID(""))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID("9f2c4e1a3b5d4c7e8f1a2b3c4d5e6f70"))
	assert.False(t, IsValidUUID("9f2c4e1a-3b5d-4c7e-8f1a-2b3c4d5e6f7"))
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "staff_id", Message: "staff_id is required"},
		{Field: "date", Message: "date must be YYYY-MM-DD"},
	}
	assert.Equal(t, "staff_id: staff_id is required; date: date must be YYYY-MM-DD", errs.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "staff_id", Message: "staff_id is required"},
	}
	assert.Equal(t, map[string]string{"staff_id": "staff_id is required"}, errs.ToMap())
}
