package ads

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	ads := router.Group("/ads")
	ads.POST("", CreateAd)
	ads.PATCH("/:id", UpdateAd)
	ads.DELETE("/:id", DeleteAd)
}
