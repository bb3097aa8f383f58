package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/config"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/logger"
)

const errorModeKey = "apiErrorMode"

// ErrorMode stores the configured error mode on every request for HandleAPIError
func ErrorMode(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(errorModeKey, mode)
		c.Next()
	}
}

func detailedErrors(c *gin.Context) bool {
	return c.GetString(errorModeKey) == config.ErrorModeDetailed
}

// HandleAPIError writes the failure response for err under the endpoint's fixed message.
// In compat mode every failure is a 500; in detailed mode validation is 400 and not found is 404.
func HandleAPIError(c *gin.Context, err error, message string) {
	reqLog := logger.WithField("requestID", c.GetString(RequestIDKey))
	resp := dto.NewErrorResponse(message, dto.ErrorCodeDatabaseError)
	status := http.StatusInternalServerError

	switch {
	case apperrors.IsValidation(err):
		resp.Code = dto.ErrorCodeValidationFailed
		resp.WithDetails(err.Error())
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Field != "" {
			resp.WithField(custom.Field)
		}
		if detailedErrors(c) {
			status = http.StatusBadRequest
		}
		reqLog.Warn().Err(err).Msg(message)
	case apperrors.IsNotFound(err):
		resp.Code = dto.ErrorCodeResourceNotFound
		resp.WithDetails(apperrors.ErrStudentNotFound.Error())
		if detailedErrors(c) {
			status = http.StatusNotFound
		}
		reqLog.Warn().Err(err).Msg(message)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		resp.Code = dto.ErrorCodeInternalServer
		reqLog.Error().Err(err).Msg(message)
	default:
		reqLog.Error().Err(err).Msg(message)
	}

	c.AbortWithStatusJSON(status, resp)
}
