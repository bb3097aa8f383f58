package ui

import (
	"context"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
)

// ServiceBackend runs view actions in-process against the same service the REST API uses
type ServiceBackend struct {
	Students services.StudentService
}

func (b ServiceBackend) List(ctx context.Context) ([]models.Student, error) {
	students, err := b.Students.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		out = append(out, *s)
	}
	return out, nil
}

func (b ServiceBackend) Create(ctx context.Context, req dto.CreateStudentRequest) (models.Student, error) {
	s, err := b.Students.CreateStudent(ctx, &req)
	if err != nil {
		return models.Student{}, err
	}
	return *s, nil
}

func (b ServiceBackend) Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) (models.Student, error) {
	s, err := b.Students.UpdateStudent(ctx, id, &req)
	if err != nil {
		return models.Student{}, err
	}
	return *s, nil
}

func (b ServiceBackend) Delete(ctx context.Context, id int64) (models.Student, error) {
	s, err := b.Students.DeleteStudent(ctx, id)
	if err != nil {
		return models.Student{}, err
	}
	return *s, nil
}
