package repositories

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/db"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

var defenseDate = time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

func sampleStudent(first string) *models.Student {
	return &models.Student{
		FirstName:             first,
		LastName:              "Smith",
		GroupName:             "G2",
		Role:                  "Designer",
		ExpectedSalary:        45000,
		ExpectedDateOfDefense: defenseDate,
	}
}

// engines returns a fresh repository per storage engine that runs without a server
func engines(t *testing.T) map[string]StudentRepository {
	return map[string]StudentRepository{
		"memory": NewMemoryStudentRepository(),
		"sqlite": NewSQLiteStudentRepository(db.OpenTestSQLite(t)),
	}
}

func TestStudentRepository_EmptyList(t *testing.T) {
	for name, repo := range engines(t) {
		t.Run(name, func(t *testing.T) {
			students, err := repo.FindAll(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, students)
			assert.Empty(t, students)
		})
	}
}

func TestStudentRepository_CreateAssignsID(t *testing.T) {
	for name, repo := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			input := sampleStudent("Jane")
			created, err := repo.Create(ctx, input)
			require.NoError(t, err)
			assert.Positive(t, created.ID)
			assert.Zero(t, input.ID, "input must not be mutated")
			assert.Equal(t, "Jane", created.FirstName)
			assert.Equal(t, int64(45000), created.ExpectedSalary)
			assert.True(t, defenseDate.Equal(created.ExpectedDateOfDefense))

			second, err := repo.Create(ctx, sampleStudent("John"))
			require.NoError(t, err)
			assert.Greater(t, second.ID, created.ID)

			students, err := repo.FindAll(ctx)
			require.NoError(t, err)
			require.Len(t, students, 2)
			assert.Equal(t, created.ID, students[0].ID)
			assert.Equal(t, second.ID, students[1].ID)
			assert.True(t, defenseDate.Equal(students[0].ExpectedDateOfDefense))
		})
	}
}

func TestStudentRepository_UpdateChangesOnlySubmittedFields(t *testing.T) {
	for name, repo := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			created, err := repo.Create(ctx, sampleStudent("Old"))
			require.NoError(t, err)

			first := "New"
			salary := int64(40000)
			updated, err := repo.UpdateByID(ctx, created.ID, models.StudentPatch{FirstName: &first, ExpectedSalary: &salary})
			require.NoError(t, err)

			assert.Equal(t, created.ID, updated.ID)
			assert.Equal(t, "New", updated.FirstName)
			assert.Equal(t, int64(40000), updated.ExpectedSalary)
			assert.Equal(t, created.LastName, updated.LastName)
			assert.Equal(t, created.Role, updated.Role)
			assert.True(t, created.ExpectedDateOfDefense.Equal(updated.ExpectedDateOfDefense))
		})
	}
}

func TestStudentRepository_UpdateUnknownID(t *testing.T) {
	for name, repo := range engines(t) {
		t.Run(name, func(t *testing.T) {
			first := "Fake"
			_, err := repo.UpdateByID(context.Background(), 999999, models.StudentPatch{FirstName: &first})
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		})
	}
}

func TestStudentRepository_UpdateEmptyPatch(t *testing.T) {
	for name, repo := range engines(t) {
		t.Run(name, func(t *testing.T) {
			created, err := repo.Create(context.Background(), sampleStudent("Update"))
			require.NoError(t, err)

			_, err = repo.UpdateByID(context.Background(), created.ID, models.StudentPatch{})
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestStudentRepository_DeleteReturnsRecordOnce(t *testing.T) {
	for name, repo := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			created, err := repo.Create(ctx, sampleStudent("Delete"))
			require.NoError(t, err)

			deleted, err := repo.DeleteByID(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.ID, deleted.ID)
			assert.Equal(t, "Delete", deleted.FirstName)

			students, err := repo.FindAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, students)

			_, err = repo.DeleteByID(ctx, created.ID)
			assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		})
	}
}

func TestStudentRepository_IDsAreNotReused(t *testing.T) {
	for name, repo := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first, err := repo.Create(ctx, sampleStudent("A"))
			require.NoError(t, err)
			_, err = repo.DeleteByID(ctx, first.ID)
			require.NoError(t, err)

			second, err := repo.Create(ctx, sampleStudent("B"))
			require.NoError(t, err)
			assert.NotEqual(t, first.ID, second.ID)
		})
	}
}

func TestStudentRepository_ConcurrentCreates(t *testing.T) {
	for name, repo := range engines(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			const n = 20

			var wg sync.WaitGroup
			errs := make(chan error, n)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := repo.Create(ctx, sampleStudent("Concurrent"))
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				require.NoError(t, err)
			}

			students, err := repo.FindAll(ctx)
			require.NoError(t, err)
			assert.Len(t, students, n)

			seen := map[int64]bool{}
			for _, s := range students {
				assert.False(t, seen[s.ID], "duplicate id %d", s.ID)
				seen[s.ID] = true
			}
		})
	}
}

func TestMemoryStudentRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryStudentRepository()
	created, err := repo.Create(context.Background(), sampleStudent("Jane"))
	require.NoError(t, err)

	created.FirstName = "Mutated"

	students, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane", students[0].FirstName)
}

func TestMemoryStudentRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemoryStudentRepository().FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepositories_Engines(t *testing.T) {
	mem := NewMemoryRepositories()
	assert.Equal(t, "memory", mem.Engine)
	assert.NoError(t, mem.Health.Ping(context.Background()))

	lite := NewSQLiteRepositories(db.OpenTestSQLite(t))
	assert.Equal(t, "sqlite", lite.Engine)
	assert.NoError(t, lite.Health.Ping(context.Background()))
}
