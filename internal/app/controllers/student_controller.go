package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/validation"
)

// StudentController handles the /users endpoints
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// ListStudents returns every student
// @Summary List students
// @Description Returns all student records ordered by identifier, or an empty array
// @Tags users
// @Produce json
// @Success 200 {array} models.Student "Student records"
// @Failure 500 {object} dto.ErrorResponse "An error occurred while fetching students"
// @Router /users [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, dto.MsgFetchStudentsFailed)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// CreateStudent stores a new student
// @Summary Create a student
// @Description Creates a student record; the identifier is assigned by the server
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 200 {object} models.Student "Created student"
// @Failure 400 {object} dto.ErrorResponse "Invalid student data (detailed error mode)"
// @Failure 500 {object} dto.ErrorResponse "An error occurred while creating student"
// @Router /users [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Debug().Err(err).Msg("Invalid create student payload")
		middleware.HandleAPIError(ctx, middleware.BindingError(err), dto.MsgCreateStudentFailed)
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, dto.MsgCreateStudentFailed)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent changes the submitted fields of a student
// @Summary Update a student
// @Description Applies a partial or full field set to the addressed student; omitted fields stay unchanged
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} models.Student "Updated student"
// @Failure 400 {object} dto.ErrorResponse "Invalid student data (detailed error mode)"
// @Failure 404 {object} dto.ErrorResponse "Student not found (detailed error mode)"
// @Failure 500 {object} dto.ErrorResponse "An error occurred while updating student"
// @Router /users/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, err := validation.ParseID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, dto.MsgUpdateStudentFailed)
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Debug().Err(err).Int64("studentID", id).Msg("Invalid update student payload")
		middleware.HandleAPIError(ctx, middleware.BindingError(err), dto.MsgUpdateStudentFailed)
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, dto.MsgUpdateStudentFailed)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Removes the addressed student and returns the removed record
// @Tags users
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} models.Student "Deleted student"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID (detailed error mode)"
// @Failure 404 {object} dto.ErrorResponse "Student not found (detailed error mode)"
// @Failure 500 {object} dto.ErrorResponse "An error occurred while deleting student"
// @Router /users/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, err := validation.ParseID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, dto.MsgDeleteStudentFailed)
		return
	}

	student, err := c.studentService.DeleteStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err, dto.MsgDeleteStudentFailed)
		return
	}

	ctx.JSON(http.StatusOK, student)
}
