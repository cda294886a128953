package upload

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/upload")
	uploads.POST("", UploadFile)
	uploads.GET("/oss-token", GetOSSToken)
}
