package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-10")
	assert.True(t, ok)

	_, ok = IsValidDate("10-03-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-02-30")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	_, ok := IsValidTimeOfDay("09:00")
	assert.True(t, ok)

	_, ok = IsValidTimeOfDay("23:59")
	assert.True(t, ok)

	_, ok = IsValidTimeOfDay("24:00")
	assert.False(t, ok)

	_, ok = IsValidTimeOfDay("9am")
	assert.False(t, ok)
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("1000-0001"))
	assert.False(t, IsValidEmployeeCode("10000001"))
	assert.False(t, IsValidEmployeeCode("abcd-efgh"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "code", Message: "code is required"},
		{Field: "password", Message: "password is required"},
	}

	m := errs.ToMap()
	assert.Equal(t, "code is required", m["code"])
	assert.Equal(t, "password is required", m["password"])
	assert.Contains(t, errs.Error(), "code: code is required")
}
