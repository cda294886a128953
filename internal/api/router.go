package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ELIUD25/empire/config"
	_ "github.com/ELIUD25/empire/docs"
	adminAds "github.com/ELIUD25/empire/internal/api/v1/admin/ads"
	adminBlog "github.com/ELIUD25/empire/internal/api/v1/admin/blog"
	adminContent "github.com/ELIUD25/empire/internal/api/v1/admin/content"
	adminFinancial "github.com/ELIUD25/empire/internal/api/v1/admin/financial"
	adminStats "github.com/ELIUD25/empire/internal/api/v1/admin/stats"
	adminTask "github.com/ELIUD25/empire/internal/api/v1/admin/task"
	adminTransaction "github.com/ELIUD25/empire/internal/api/v1/admin/transaction"
	adminUser "github.com/ELIUD25/empire/internal/api/v1/admin/user"
	"github.com/ELIUD25/empire/internal/api/v1/ads"
	"github.com/ELIUD25/empire/internal/api/v1/auth"
	"github.com/ELIUD25/empire/internal/api/v1/betting"
	"github.com/ELIUD25/empire/internal/api/v1/blog"
	"github.com/ELIUD25/empire/internal/api/v1/common/upload"
	"github.com/ELIUD25/empire/internal/api/v1/financial"
	taskRoutes "github.com/ELIUD25/empire/internal/api/v1/task"
	"github.com/ELIUD25/empire/internal/api/v1/trading"
	userRoutes "github.com/ELIUD25/empire/internal/api/v1/user"
	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/middleware"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", cfg.AppBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			userRoutes.RegisterRoutes(authorized)
			ads.RegisterRoutes(authorized)
			taskRoutes.RegisterRoutes(authorized)
			financial.RegisterRoutes(authorized)
			blog.RegisterRoutes(authorized)
			trading.RegisterRoutes(authorized)
			betting.RegisterRoutes(authorized)
			upload.RegisterRoutes(authorized)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin)
			adminFinancial.RegisterRoutes(admin)
			adminTask.RegisterRoutes(admin)
			adminAds.RegisterRoutes(admin)
			adminBlog.RegisterRoutes(admin)
			adminContent.RegisterRoutes(admin)
			adminStats.RegisterRoutes(admin)
			adminTransaction.RegisterRoutes(admin)
		}
	}

	return router, nil
}
