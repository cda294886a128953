package betting

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	betting := router.Group("/betting")
	betting.GET("/tips", ListTips)
}
