package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentrecords/internal/app/controllers"
	"github.com/yigit/studentrecords/internal/ui"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	healthController *controllers.HealthController,
	pageHandler *ui.Handler,
) {
	api := router.Group("/api")
	{
		api.GET("/health", healthController.Health)

		users := api.Group("/users")
		{
			users.GET("", studentController.ListStudents)
			users.POST("", studentController.CreateStudent)
			users.PUT("/:id", studentController.UpdateStudent)
			users.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	// Server-rendered page
	if pageHandler != nil {
		pageHandler.Register(router)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
