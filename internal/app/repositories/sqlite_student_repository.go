package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

// SQLiteStudentRepository handles student database operations on SQLite
type SQLiteStudentRepository struct {
	db *sql.DB
	q  studentQueries
}

// NewSQLiteStudentRepository creates a new SQLite student repository
func NewSQLiteStudentRepository(db *sql.DB) *SQLiteStudentRepository {
	return &SQLiteStudentRepository{
		db: db,
		q:  newStudentQueries(squirrel.Question),
	}
}

// sqliteTime scans timestamps that come back either typed or as text,
// depending on whether SQLite can see the column's declared type.
type sqliteTime struct {
	t *time.Time
}

func (st sqliteTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*st.t = v.UTC()
		return nil
	case string:
		return st.parse(v)
	case []byte:
		return st.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (st sqliteTime) parse(text string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.Parse(layout, text); err == nil {
			*st.t = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", text)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSQLiteStudent(row rowScanner) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.GroupName, &s.Role, &s.ExpectedSalary, sqliteTime{t: &s.ExpectedDateOfDefense})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// FindAll retrieves all students ordered by ID
func (r *SQLiteStudentRepository) FindAll(ctx context.Context) ([]*models.Student, error) {
	query, args, err := r.q.findAll()
	if err != nil {
		return nil, fmt.Errorf("failed to build find all students query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanSQLiteStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// Create inserts a student and returns the stored row
func (r *SQLiteStudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	query, args, err := r.q.create(student)
	if err != nil {
		return nil, fmt.Errorf("failed to build create student query: %w", err)
	}

	created, err := scanSQLiteStudent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return nil, classify(err, "creating student")
	}
	return created, nil
}

// UpdateByID updates the submitted columns of one student in a single statement
func (r *SQLiteStudentRepository) UpdateByID(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error) {
	query, args, err := r.q.updateByID(id, patch)
	if err != nil {
		return nil, err
	}

	updated, err := scanSQLiteStudent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, classify(err, "updating student")
	}
	return updated, nil
}

// DeleteByID deletes one student and returns the removed row
func (r *SQLiteStudentRepository) DeleteByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.q.deleteByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to build delete student query: %w", err)
	}

	deleted, err := scanSQLiteStudent(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, classify(err, "deleting student")
	}
	return deleted, nil
}

// Ping checks the database file is usable
func (r *SQLiteStudentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
