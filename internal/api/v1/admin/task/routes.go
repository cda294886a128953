package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	tasks.GET("", ListTasks)
	tasks.POST("", CreateTask)
	tasks.GET("/submissions", ListSubmissions)
	tasks.PUT("/submissions/:id/approve", ApproveSubmission)
	tasks.PUT("/submissions/:id/reject", RejectSubmission)
	tasks.PATCH("/:id", UpdateTask)
	tasks.DELETE("/:id", DeleteTask)
}
