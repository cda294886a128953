package auth

import (
	"github.com/ELIUD25/empire/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.POST("/register", Register)
	auth.POST("/login", Login)
	auth.POST("/check-referral", CheckReferral)
	auth.GET("/me", middleware.AuthMiddleware(), Me)
	auth.POST("/logout", middleware.AuthMiddleware(), Logout)
}
