package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/repositories"
)

// HealthController reports whether the storage engine answers
type HealthController struct {
	engine  string
	checker repositories.HealthChecker
}

// NewHealthController creates a new HealthController
func NewHealthController(engine string, checker repositories.HealthChecker) *HealthController {
	return &HealthController{engine: engine, checker: checker}
}

// Health pings the storage engine
// @Summary Health check
// @Description Pings the configured storage engine
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse "Storage reachable"
// @Failure 503 {object} dto.HealthResponse "Storage unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.checker.Ping(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Storage: c.engine})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Storage: c.engine})
}
