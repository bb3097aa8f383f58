package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/repositories"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func newTestService() StudentService {
	return NewStudentService(repositories.NewMemoryStudentRepository(), zerolog.Nop())
}

func janeRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FirstName:             "Jane",
		LastName:              "Smith",
		GroupName:             "G2",
		Role:                  "Designer",
		ExpectedSalary:        "45000",
		ExpectedDateOfDefense: "2025-05-01",
	}
}

func strPtr(s string) *string { return &s }

func TestStudentService_CreateCoercesInput(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateStudent(context.Background(), janeRequest())
	require.NoError(t, err)

	assert.Positive(t, created.ID)
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, int64(45000), created.ExpectedSalary)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), created.ExpectedDateOfDefense)

	students, err := svc.ListStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, created.ID, students[0].ID)
}

func TestStudentService_ListEmptyIsNotNil(t *testing.T) {
	students, err := newTestService().ListStudents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestStudentService_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*dto.CreateStudentRequest)
		wantField string
	}{
		{"salary not a number", func(r *dto.CreateStudentRequest) { r.ExpectedSalary = "notanumber" }, "expectedSalary"},
		{"salary fractional", func(r *dto.CreateStudentRequest) { r.ExpectedSalary = "45000.5" }, "expectedSalary"},
		{"missing salary", func(r *dto.CreateStudentRequest) { r.ExpectedSalary = "" }, "expectedSalary"},
		{"blank first name", func(r *dto.CreateStudentRequest) { r.FirstName = "  " }, "firstName"},
		{"missing role", func(r *dto.CreateStudentRequest) { r.Role = "" }, "role"},
		{"bad date", func(r *dto.CreateStudentRequest) { r.ExpectedDateOfDefense = "01/05/2025" }, "expectedDateOfDefense"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			req := janeRequest()
			tt.mutate(req)

			_, err := svc.CreateStudent(context.Background(), req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			var custom *apperrors.CustomError
			require.True(t, errors.As(err, &custom))
			assert.Equal(t, tt.wantField, custom.Field)

			students, err := svc.ListStudents(context.Background())
			require.NoError(t, err)
			assert.Empty(t, students, "nothing is stored on validation failure")
		})
	}
}

func TestStudentService_CreateOnlyFirstNameFails(t *testing.T) {
	_, err := newTestService().CreateStudent(context.Background(), &dto.CreateStudentRequest{FirstName: "Jane"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestStudentService_UpdatePartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, janeRequest())
	require.NoError(t, err)

	salary := dto.SalaryText("52000")
	updated, err := svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{
		Role:           strPtr("Lead Designer"),
		ExpectedSalary: &salary,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Lead Designer", updated.Role)
	assert.Equal(t, int64(52000), updated.ExpectedSalary)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, created.ExpectedDateOfDefense, updated.ExpectedDateOfDefense)
}

func TestStudentService_UpdateDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, janeRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{
		ExpectedDateOfDefense: strPtr("2025-06-15T10:00:00+02:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC), updated.ExpectedDateOfDefense)
}

func TestStudentService_UpdateFailures(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, janeRequest())
	require.NoError(t, err)

	t.Run("empty body", func(t *testing.T) {
		_, err := svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("blank field", func(t *testing.T) {
		_, err := svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{LastName: strPtr("")})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("bad salary", func(t *testing.T) {
		salary := dto.SalaryText("lots")
		_, err := svc.UpdateStudent(ctx, created.ID, &dto.UpdateStudentRequest{ExpectedSalary: &salary})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateStudent(ctx, 999999, &dto.UpdateStudentRequest{FirstName: strPtr("Fake")})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})

	students, err := svc.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Smith", students[0].LastName)
}

func TestStudentService_Delete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateStudent(ctx, janeRequest())
	require.NoError(t, err)

	deleted, err := svc.DeleteStudent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.DeleteStudent(ctx, created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

type failingRepo struct{ repositories.StudentRepository }

func (failingRepo) FindAll(context.Context) ([]*models.Student, error) {
	return nil, errors.New("connection refused")
}

func TestStudentService_ListStorageFailure(t *testing.T) {
	svc := NewStudentService(failingRepo{}, zerolog.Nop())

	_, err := svc.ListStudents(context.Background())
	require.Error(t, err)
	assert.False(t, apperrors.IsValidation(err))
	assert.False(t, apperrors.IsNotFound(err))
}
