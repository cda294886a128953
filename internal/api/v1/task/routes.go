package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/tasks")
	tasks.GET("", ListTasks)
	tasks.GET("/my-submissions", MySubmissions)
	tasks.POST("/:id/submit", SubmitTask)
}
