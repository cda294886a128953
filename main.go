package main

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ELIUD25/empire/config"
	"github.com/ELIUD25/empire/internal/api"
	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"github.com/ELIUD25/empire/pkg/logger"
)

// @title Empire API
// @version 1.0
// @description Multi-sided earning platform: watch ads, complete tasks, write articles, refer friends.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logCfg := &logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}
	if err := logger.InitLogger(logCfg); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.DepositRequest{},
		&models.WithdrawalRequest{},
		&models.Task{},
		&models.TaskSubmission{},
		&models.Advertisement{},
		&models.BlogPost{},
		&models.TradingSignal{},
		&models.TradingCourse{},
		&models.MarketNews{},
		&models.MarketAnalysis{},
		&models.BettingTip{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	initAdminUser(cfg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func initAdminUser(cfg *config.Config) {
	adminEmail := "admin@empire.com"
	adminPassword := "Empire1234"

	var adminUser models.User
	result := database.DB.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("failed to hash admin password: %v", err)
			}

			adminUser = models.User{
				Name:         "Administrator",
				Email:        adminEmail,
				Password:     string(hashedPassword),
				Role:         "admin",
				IsActivated:  true,
				ReferralCode: models.NewReferralCode(),
			}
			adminUser.ReferralLink = cfg.AppBaseURL + "/register?ref=" + adminUser.ReferralCode

			if err := database.DB.Create(&adminUser).Error; err != nil {
				log.Fatalf("failed to create admin user: %v", err)
			}
			log.Println("Admin user created successfully!")
		} else {
			log.Fatalf("failed to check for admin user: %v", result.Error)
		}
	} else {
		log.Println("Admin user already exists.")
	}
}
