package transaction

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	transactions := router.Group("/transactions")
	transactions.GET("", ListTransactions)
	transactions.GET("/export", ExportTransactions)
}
