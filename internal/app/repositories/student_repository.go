package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/dberrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// PostgresStudentRepository handles student database operations on PostgreSQL
type PostgresStudentRepository struct {
	db *pgxpool.Pool
	q  studentQueries
}

// NewStudentRepository creates a new PostgreSQL student repository
func NewStudentRepository(db *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{
		db: db,
		q:  newStudentQueries(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.GroupName, &s.Role, &s.ExpectedSalary, &s.ExpectedDateOfDefense)
	if err != nil {
		return nil, err
	}
	s.ExpectedDateOfDefense = s.ExpectedDateOfDefense.UTC()
	return s, nil
}

// classify turns driver errors into application error classes
func classify(err error, action string) error {
	switch {
	case dberrors.IsNoRows(err):
		return apperrors.ErrStudentNotFound
	case dberrors.IsInputRejected(err):
		return fmt.Errorf("%w: %s: %v", apperrors.ErrValidationFailed, action, err)
	default:
		return fmt.Errorf("error %s: %w", action, err)
	}
}

// FindAll retrieves all students ordered by ID
func (r *PostgresStudentRepository) FindAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.q.findAll()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find all students SQL")
		return nil, fmt.Errorf("failed to build find all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts a student and returns the stored row
func (r *PostgresStudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	sql, args, err := r.q.create(student)
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return nil, fmt.Errorf("failed to build create student query: %w", err)
	}

	created, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return nil, classify(err, "creating student")
	}
	return created, nil
}

// UpdateByID updates the submitted columns of one student in a single statement
func (r *PostgresStudentRepository) UpdateByID(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error) {
	sql, args, err := r.q.updateByID(id, patch)
	if err != nil {
		return nil, err
	}

	updated, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if !dberrors.IsNoRows(err) {
			logger.Error().Err(err).Int64("studentID", id).Msg("Error executing update student query")
		}
		return nil, classify(err, "updating student")
	}
	return updated, nil
}

// DeleteByID deletes one student and returns the removed row
func (r *PostgresStudentRepository) DeleteByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.q.deleteByID(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return nil, fmt.Errorf("failed to build delete student query: %w", err)
	}

	deleted, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if !dberrors.IsNoRows(err) {
			logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		}
		return nil, classify(err, "deleting student")
	}
	return deleted, nil
}

// Ping checks the pool can reach the server
func (r *PostgresStudentRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
