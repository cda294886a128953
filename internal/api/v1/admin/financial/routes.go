package financial

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	financial := router.Group("/financial")
	financial.GET("/deposits", ListDeposits)
	financial.PUT("/deposits/:id/approve", ApproveDeposit)
	financial.PUT("/deposits/:id/reject", RejectDeposit)
	financial.GET("/withdrawals", ListWithdrawals)
	financial.PUT("/withdrawals/:id/approve", ApproveWithdrawal)
	financial.PUT("/withdrawals/:id/reject", RejectWithdrawal)
}
