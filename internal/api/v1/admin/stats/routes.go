package stats

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", GetStats)
	router.GET("/pending", GetPending)
}
