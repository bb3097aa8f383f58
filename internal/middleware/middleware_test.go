package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/config"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

func serveError(t *testing.T, mode string, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()), ErrorMode(mode))
	router.GET("/fail", func(c *gin.Context) {
		HandleAPIError(c, err, "An error occurred while fetching students")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleAPIError(t *testing.T) {
	validationErr := apperrors.NewValidationError("expectedSalary", `expectedSalary must be a whole number, got "x"`)
	notFoundErr := fmt.Errorf("error deleting student 9: %w", apperrors.ErrStudentNotFound)
	storageErr := errors.New("pq: relation does not exist")

	tests := []struct {
		name       string
		mode       string
		err        error
		status     int
		code       dto.ErrorCode
		field      string
		hasDetails bool
	}{
		{"compat validation", config.ErrorModeCompat, validationErr, http.StatusInternalServerError, dto.ErrorCodeValidationFailed, "expectedSalary", true},
		{"detailed validation", config.ErrorModeDetailed, validationErr, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "expectedSalary", true},
		{"compat not found", config.ErrorModeCompat, notFoundErr, http.StatusInternalServerError, dto.ErrorCodeResourceNotFound, "", true},
		{"detailed not found", config.ErrorModeDetailed, notFoundErr, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "", true},
		{"storage", config.ErrorModeDetailed, storageErr, http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "", false},
		{"no mode set", "", validationErr, http.StatusInternalServerError, dto.ErrorCodeValidationFailed, "expectedSalary", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := serveError(t, tt.mode, tt.err)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "An error occurred while fetching students", resp.Error)
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.field, resp.Field)
			assert.Equal(t, tt.hasDetails, resp.Details != "")
		})
	}
}

func TestRequestLogger_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), `"status":200`)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

type bindTarget struct {
	FirstName string `json:"firstName" binding:"required"`
	Age       int    `json:"age"`
}

func TestBindingError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing required", `{}`, "firstName"},
		{"wrong type", `{"firstName":"Jane","age":"old"}`, "age"},
		{"empty body", ``, ""},
		{"syntax", `{"firstName" "Jane"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var target bindTarget
			err := BindingError(c.ShouldBindJSON(&target))
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			var custom *apperrors.CustomError
			require.ErrorAs(t, err, &custom)
			assert.Equal(t, tt.wantField, custom.Field)
		})
	}
}
