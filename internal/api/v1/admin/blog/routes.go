package blog

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	blog := router.Group("/blog")
	blog.GET("", ListPosts)
	blog.PUT("/:id/approve", ApprovePost)
	blog.PUT("/:id/reject", RejectPost)
}
