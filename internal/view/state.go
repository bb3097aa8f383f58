// Package view holds the client-side state of the student records page:
// the fetched list and the form draft, plus the rules for moving between them.
// Front-ends (the browser page and studentctl) render State and forward user actions to a Session.
package view

import (
	"strconv"
	"time"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
)

// DateLayout is how the draft spells the defense date
const DateLayout = "2006-01-02"

// Draft is the form being edited. ID is nil for a new record.
type Draft struct {
	ID                    *int64 `json:"id,omitempty"`
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	GroupName             string `json:"groupName"`
	Role                  string `json:"role"`
	ExpectedSalary        string `json:"expectedSalary"`
	ExpectedDateOfDefense string `json:"expectedDateOfDefense"`
}

// IsUpdate reports whether submitting the draft edits an existing record
func (d Draft) IsUpdate() bool {
	return d.ID != nil
}

// Addresses reports whether the draft is editing the record with the given id
func (d Draft) Addresses(id int64) bool {
	return d.ID != nil && *d.ID == id
}

// CreateRequest converts the draft into a creation payload
func (d Draft) CreateRequest() dto.CreateStudentRequest {
	return dto.CreateStudentRequest{
		FirstName:             d.FirstName,
		LastName:              d.LastName,
		GroupName:             d.GroupName,
		Role:                  d.Role,
		ExpectedSalary:        dto.SalaryText(d.ExpectedSalary),
		ExpectedDateOfDefense: d.ExpectedDateOfDefense,
	}
}

// UpdateRequest converts the draft into an update payload.
// The form only shows the day of the defense date, so the date is left out when it
// still reads the same as in loaded; the stored time of day then survives the update.
// A nil loaded sends every field.
func (d Draft) UpdateRequest(loaded *models.Student) dto.UpdateStudentRequest {
	salary := dto.SalaryText(d.ExpectedSalary)
	req := dto.UpdateStudentRequest{
		FirstName:      &d.FirstName,
		LastName:       &d.LastName,
		GroupName:      &d.GroupName,
		Role:           &d.Role,
		ExpectedSalary: &salary,
	}
	if loaded == nil || d.ExpectedDateOfDefense != formatDate(loaded.ExpectedDateOfDefense) {
		req.ExpectedDateOfDefense = &d.ExpectedDateOfDefense
	}
	return req
}

func formatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// BlankDraft is an empty form whose defense date defaults to today
func BlankDraft(today time.Time) Draft {
	return Draft{ExpectedDateOfDefense: today.Format(DateLayout)}
}

// DraftFrom loads a stored record into form values
func DraftFrom(s models.Student) Draft {
	id := s.ID
	return Draft{
		ID:                    &id,
		FirstName:             s.FirstName,
		LastName:              s.LastName,
		GroupName:             s.GroupName,
		Role:                  s.Role,
		ExpectedSalary:        strconv.FormatInt(s.ExpectedSalary, 10),
		ExpectedDateOfDefense: formatDate(s.ExpectedDateOfDefense),
	}
}

// State is everything the page shows
type State struct {
	Records []models.Student `json:"records"`
	Draft   Draft            `json:"draft"`
}

// Find returns the listed record with the given id
func (s State) Find(id int64) (models.Student, bool) {
	for _, r := range s.Records {
		if r.ID == id {
			return r, true
		}
	}
	return models.Student{}, false
}

// Loaded replaces the list with a fresh fetch
func Loaded(s State, records []models.Student) State {
	if records == nil {
		records = []models.Student{}
	}
	s.Records = records
	return s
}

// Edit loads a listed record into the draft
func Edit(s State, record models.Student) State {
	s.Draft = DraftFrom(record)
	return s
}

// Reset blanks the draft
func Reset(s State, today time.Time) State {
	s.Draft = BlankDraft(today)
	return s
}

// AfterSubmit clears the draft once a submit succeeded
func AfterSubmit(s State, today time.Time) State {
	return Reset(s, today)
}

// AfterDelete clears the draft only if it was editing the deleted record
func AfterDelete(s State, id int64, today time.Time) State {
	if s.Draft.Addresses(id) {
		return Reset(s, today)
	}
	return s
}
