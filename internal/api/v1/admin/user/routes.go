package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	users.GET("", ListUsers)
	users.PUT("/:id/ban", BanUser)
	users.PUT("/:id/unban", UnbanUser)
}
