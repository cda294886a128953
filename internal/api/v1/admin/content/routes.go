package content

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	content := router.Group("/content")
	content.POST("/signals", CreateSignal)
	content.PUT("/signals/:id/status", UpdateSignalStatus)
	content.PATCH("/signals/:id", UpdateSignal)
	content.DELETE("/signals/:id", DeleteSignal)
	content.POST("/courses", CreateCourse)
	content.PATCH("/courses/:id", UpdateCourse)
	content.DELETE("/courses/:id", DeleteCourse)
	content.POST("/news", CreateNews)
	content.PATCH("/news/:id", UpdateNews)
	content.DELETE("/news/:id", DeleteNews)
	content.GET("/analysis", ListAnalyses)
	content.POST("/analysis", CreateAnalysis)
	content.PATCH("/analysis/:id", UpdateAnalysis)
	content.DELETE("/analysis/:id", DeleteAnalysis)
	content.POST("/tips", CreateTip)
	content.PATCH("/tips/:id", UpdateTip)
	content.DELETE("/tips/:id", DeleteTip)
}
