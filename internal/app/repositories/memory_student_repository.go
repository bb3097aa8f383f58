package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// MemoryStudentRepository keeps students in process memory.
// Identifiers start at 1 and are never reused.
type MemoryStudentRepository struct {
	mu       sync.RWMutex
	students map[int64]models.Student
	lastID   int64
}

// NewMemoryStudentRepository creates an empty in-memory repository
func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{students: make(map[int64]models.Student)}
}

// FindAll returns copies of all students ordered by ID
func (r *MemoryStudentRepository) FindAll(ctx context.Context) ([]*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	students := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		s := s
		students = append(students, &s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

// Create stores a copy of student under the next identifier
func (r *MemoryStudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := *student
	stored.ID = r.lastID
	r.students[stored.ID] = stored
	return &stored, nil
}

// UpdateByID applies patch to the addressed student
func (r *MemoryStudentRepository) UpdateByID(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("", "update has no fields")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	patch.Apply(&stored)
	r.students[id] = stored
	return &stored, nil
}

// DeleteByID removes the addressed student
func (r *MemoryStudentRepository) DeleteByID(ctx context.Context, id int64) (*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	delete(r.students, id)
	return &stored, nil
}

// Ping always succeeds
func (r *MemoryStudentRepository) Ping(context.Context) error {
	return nil
}
