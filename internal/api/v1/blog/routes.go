package blog

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	blog := router.Group("/blog")
	blog.GET("", ListPosts)
	blog.POST("", CreatePost)
	blog.GET("/my-posts", MyPosts)
	blog.GET("/:id", GetPost)
}
