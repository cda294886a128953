package ads

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/ads")
	group.GET("", ListAds)
	group.POST("/:id/watch", WatchAd)
}
