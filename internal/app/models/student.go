package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID                    int64     `json:"id" db:"id" example:"1"`                                                             // Server-assigned identifier, never reused
	FirstName             string    `json:"firstName" db:"first_name" example:"Jane"`                                           // Given name
	LastName              string    `json:"lastName" db:"last_name" example:"Smith"`                                            // Family name
	GroupName             string    `json:"groupName" db:"group_name" example:"G2"`                                             // Study group
	Role                  string    `json:"role" db:"role" example:"Designer"`                                                  // Role the student is preparing for
	ExpectedSalary        int64     `json:"expectedSalary" db:"expected_salary" example:"45000"`                                // Whole currency units
	ExpectedDateOfDefense time.Time `json:"expectedDateOfDefense" db:"expected_date_of_defense" example:"2025-05-01T00:00:00Z"` // Thesis defense date
}

// StudentPatch carries the fields submitted by an update; nil means "leave unchanged"
type StudentPatch struct {
	FirstName             *string
	LastName              *string
	GroupName             *string
	Role                  *string
	ExpectedSalary        *int64
	ExpectedDateOfDefense *time.Time
}

// IsEmpty reports whether the patch would change nothing
func (p StudentPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.GroupName == nil &&
		p.Role == nil && p.ExpectedSalary == nil && p.ExpectedDateOfDefense == nil
}

// Apply copies the submitted fields onto s
func (p StudentPatch) Apply(s *Student) {
	if p.FirstName != nil {
		s.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		s.LastName = *p.LastName
	}
	if p.GroupName != nil {
		s.GroupName = *p.GroupName
	}
	if p.Role != nil {
		s.Role = *p.Role
	}
	if p.ExpectedSalary != nil {
		s.ExpectedSalary = *p.ExpectedSalary
	}
	if p.ExpectedDateOfDefense != nil {
		s.ExpectedDateOfDefense = *p.ExpectedDateOfDefense
	}
}

// Columns maps the submitted fields onto their column names
func (p StudentPatch) Columns() map[string]interface{} {
	set := make(map[string]interface{})
	if p.FirstName != nil {
		set["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		set["last_name"] = *p.LastName
	}
	if p.GroupName != nil {
		set["group_name"] = *p.GroupName
	}
	if p.Role != nil {
		set["role"] = *p.Role
	}
	if p.ExpectedSalary != nil {
		set["expected_salary"] = *p.ExpectedSalary
	}
	if p.ExpectedDateOfDefense != nil {
		set["expected_date_of_defense"] = *p.ExpectedDateOfDefense
	}
	return set
}
