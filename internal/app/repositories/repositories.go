package repositories

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/studentrecords/internal/app/models"
)

// StudentRepository is the persistence collaborator for student records.
// Implementations assign identifiers and make each call atomic for the single record it touches.
type StudentRepository interface {
	// FindAll returns every student ordered by identifier.
	FindAll(ctx context.Context) ([]*models.Student, error)
	// Create stores a new student and returns it with its assigned identifier.
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	// UpdateByID applies patch to the addressed student and returns the result.
	UpdateByID(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error)
	// DeleteByID removes the addressed student and returns what was removed.
	DeleteByID(ctx context.Context, id int64) (*models.Student, error)
}

// HealthChecker reports whether the storage engine is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Engine            string
	StudentRepository StudentRepository
	Health            HealthChecker
}

// NewPostgresRepositories wires repositories over a pgx pool
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	repo := NewStudentRepository(db)
	return &Repositories{Engine: "postgres", StudentRepository: repo, Health: repo}
}

// NewSQLiteRepositories wires repositories over a database/sql SQLite handle
func NewSQLiteRepositories(db *sql.DB) *Repositories {
	repo := NewSQLiteStudentRepository(db)
	return &Repositories{Engine: "sqlite", StudentRepository: repo, Health: repo}
}

// NewMemoryRepositories wires process-local repositories
func NewMemoryRepositories() *Repositories {
	repo := NewMemoryStudentRepository()
	return &Repositories{Engine: "memory", StudentRepository: repo, Health: repo}
}
