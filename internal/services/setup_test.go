package services

import (
	"os"

	"github.com/ELIUD25/empire/internal/database"
	"github.com/ELIUD25/empire/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB wires the global DB to an in-memory SQLite with a clean schema.
// Redis is left nil; the cache helpers tolerate that.
func setupTestDB() {
	os.Setenv("JWT_SECRET", "test_secret")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	tables := []interface{}{
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
	}

	// Drop tables if exist to ensure clean state and schema update
	db.Migrator().DropTable(tables...)

	if err := db.AutoMigrate(tables...); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func seedUser(name, email, code string, balance float64) *models.User {
	user := &models.User{
		Name:         name,
		Email:        email,
		Password:     "hashedpassword",
		Role:         "user",
		Balance:      balance,
		ReferralCode: code,
		ReferralLink: "https://empire-eosin.vercel.app/register?ref=" + code,
	}
	if err := database.DB.Create(user).Error; err != nil {
		panic(err)
	}
	return user
}
