package financial

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	financial := router.Group("/financial")
	financial.POST("/deposit", Deposit)
	financial.POST("/withdraw", Withdraw)
	financial.GET("/my-deposits", MyDeposits)
	financial.GET("/my-withdrawals", MyWithdrawals)
}
