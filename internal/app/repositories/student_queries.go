package repositories

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/studentrecords/internal/app/models"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

const studentsTable = "students"

// studentColumns is the scan order used by every statement that returns rows
var studentColumns = []string{
	"id",
	"first_name",
	"last_name",
	"group_name",
	"role",
	"expected_salary",
	"expected_date_of_defense",
}

var returningStudent = "RETURNING " + strings.Join(studentColumns, ", ")

// studentQueries builds the four student statements for a given placeholder dialect
type studentQueries struct {
	sb squirrel.StatementBuilderType
}

func newStudentQueries(format squirrel.PlaceholderFormat) studentQueries {
	return studentQueries{sb: squirrel.StatementBuilder.PlaceholderFormat(format)}
}

func (q studentQueries) findAll() (string, []interface{}, error) {
	return q.sb.Select(studentColumns...).
		From(studentsTable).
		OrderBy("id ASC").
		ToSql()
}

func (q studentQueries) create(s *models.Student) (string, []interface{}, error) {
	return q.sb.Insert(studentsTable).
		Columns(studentColumns[1:]...).
		Values(s.FirstName, s.LastName, s.GroupName, s.Role, s.ExpectedSalary, s.ExpectedDateOfDefense).
		Suffix(returningStudent).
		ToSql()
}

func (q studentQueries) updateByID(id int64, patch models.StudentPatch) (string, []interface{}, error) {
	set := patch.Columns()
	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: update has no fields", apperrors.ErrValidationFailed)
	}
	return q.sb.Update(studentsTable).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningStudent).
		ToSql()
}

func (q studentQueries) deleteByID(id int64) (string, []interface{}, error) {
	return q.sb.Delete(studentsTable).
		Where(squirrel.Eq{"id": id}).
		Suffix(returningStudent).
		ToSql()
}
