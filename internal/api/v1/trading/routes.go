package trading

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	trading := router.Group("/trading")
	trading.GET("/signals", ListSignals)
	trading.GET("/courses", ListCourses)
	trading.GET("/news", ListNews)
	trading.GET("/analysis", ListAnalyses)
}
