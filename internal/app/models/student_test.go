package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStudentPatch_Apply(t *testing.T) {
	role := "Lead Designer"
	salary := int64(52000)
	s := Student{ID: 3, FirstName: "Jane", LastName: "Smith", Role: "Designer", ExpectedSalary: 45000}

	StudentPatch{Role: &role, ExpectedSalary: &salary}.Apply(&s)

	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, "Jane", s.FirstName)
	assert.Equal(t, "Lead Designer", s.Role)
	assert.Equal(t, int64(52000), s.ExpectedSalary)
}

func TestStudentPatch_Columns(t *testing.T) {
	name := "Bob"
	date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, StudentPatch{}.IsEmpty())
	assert.Empty(t, StudentPatch{}.Columns())

	patch := StudentPatch{FirstName: &name, ExpectedDateOfDefense: &date}
	assert.False(t, patch.IsEmpty())
	assert.Equal(t, map[string]interface{}{
		"first_name":               "Bob",
		"expected_date_of_defense": date,
	}, patch.Columns())
}
