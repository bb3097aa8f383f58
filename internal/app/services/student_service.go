package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/pkg/validation"
)

// Request field names, as they appear in JSON bodies and error responses
const (
	fieldFirstName             = "firstName"
	fieldLastName              = "lastName"
	fieldGroupName             = "groupName"
	fieldRole                  = "role"
	fieldExpectedSalary        = "expectedSalary"
	fieldExpectedDateOfDefense = "expectedDateOfDefense"
)

// StudentService defines the operations behind the /users endpoints and the web page
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) (*models.Student, error)
}

type studentService struct {
	studentRepo repositories.StudentRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// ListStudents returns every stored student, oldest first
func (s *studentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

// CreateStudent validates and coerces a creation request and stores the result
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	student, err := studentFromCreateRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Int64("studentID", created.ID).Msg("Student created")
	return created, nil
}

// UpdateStudent applies the submitted fields to the addressed student
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	patch, err := patchFromUpdateRequest(req)
	if err != nil {
		return nil, err
	}

	updated, err := s.studentRepo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating student %d: %w", id, err)
	}

	s.logger.Info().Int64("studentID", id).Msg("Student updated")
	return updated, nil
}

// DeleteStudent removes the addressed student and returns the removed record
func (s *studentService) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	deleted, err := s.studentRepo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting student %d: %w", id, err)
	}

	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return deleted, nil
}

func studentFromCreateRequest(req *dto.CreateStudentRequest) (*models.Student, error) {
	if req == nil {
		return nil, validation.RequireText(fieldFirstName, "")
	}

	for _, f := range []struct{ name, value string }{
		{fieldFirstName, req.FirstName},
		{fieldLastName, req.LastName},
		{fieldGroupName, req.GroupName},
		{fieldRole, req.Role},
	} {
		if err := validation.RequireText(f.name, f.value); err != nil {
			return nil, err
		}
	}

	salary, err := validation.ParseSalary(fieldExpectedSalary, string(req.ExpectedSalary))
	if err != nil {
		return nil, err
	}

	defense, err := validation.ParseDate(fieldExpectedDateOfDefense, req.ExpectedDateOfDefense)
	if err != nil {
		return nil, err
	}

	return &models.Student{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		GroupName:             req.GroupName,
		Role:                  req.Role,
		ExpectedSalary:        salary,
		ExpectedDateOfDefense: defense,
	}, nil
}

func patchFromUpdateRequest(req *dto.UpdateStudentRequest) (models.StudentPatch, error) {
	var patch models.StudentPatch
	if req == nil {
		return patch, nil
	}

	for _, f := range []struct {
		name  string
		value *string
	}{
		{fieldFirstName, req.FirstName},
		{fieldLastName, req.LastName},
		{fieldGroupName, req.GroupName},
		{fieldRole, req.Role},
	} {
		if f.value == nil {
			continue
		}
		if err := validation.RequireText(f.name, *f.value); err != nil {
			return patch, err
		}
	}

	patch.FirstName = req.FirstName
	patch.LastName = req.LastName
	patch.GroupName = req.GroupName
	patch.Role = req.Role

	if req.ExpectedSalary != nil {
		salary, err := validation.ParseSalary(fieldExpectedSalary, string(*req.ExpectedSalary))
		if err != nil {
			return patch, err
		}
		patch.ExpectedSalary = &salary
	}

	if req.ExpectedDateOfDefense != nil {
		defense, err := validation.ParseDate(fieldExpectedDateOfDefense, *req.ExpectedDateOfDefense)
		if err != nil {
			return patch, err
		}
		patch.ExpectedDateOfDefense = &defense
	}

	return patch, nil
}
