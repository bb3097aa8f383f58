package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SalaryText holds the expected salary exactly as the client sent it.
// Browsers submit form values as strings ("45000") while scripted clients send
// numbers (45000); both decode here and are parsed later by validation.ParseSalary.
type SalaryText string

// UnmarshalJSON accepts a JSON string or a bare JSON number
func (s *SalaryText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("expectedSalary: %w", err)
		}
		*s = SalaryText(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("expectedSalary must be a string or a number")
	}
	*s = SalaryText(number.String())
	return nil
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	FirstName             string     `json:"firstName" binding:"required" example:"Jane"`
	LastName              string     `json:"lastName" binding:"required" example:"Smith"`
	GroupName             string     `json:"groupName" binding:"required" example:"G2"`
	Role                  string     `json:"role" binding:"required" example:"Designer"`
	ExpectedSalary        SalaryText `json:"expectedSalary" binding:"required" swaggertype:"string" example:"45000"`
	ExpectedDateOfDefense string     `json:"expectedDateOfDefense" binding:"required" example:"2025-05-01"`
}

// UpdateStudentRequest represents a partial or full student update; omitted fields stay unchanged
type UpdateStudentRequest struct {
	FirstName             *string     `json:"firstName,omitempty" example:"Jane"`
	LastName              *string     `json:"lastName,omitempty" example:"Smith"`
	GroupName             *string     `json:"groupName,omitempty" example:"G2"`
	Role                  *string     `json:"role,omitempty" example:"Lead Designer"`
	ExpectedSalary        *SalaryText `json:"expectedSalary,omitempty" swaggertype:"string" example:"52000"`
	ExpectedDateOfDefense *string     `json:"expectedDateOfDefense,omitempty" example:"2025-06-15"`
}
